// Package main provides the star-battle CLI solver.
//
// # Overview
//
// Star Battle is a logic puzzle played on a grid split into regions. The
// solver places stars so that every line, every column and every region
// holds exactly the expected number of stars, with no two stars touching,
// even diagonally.
//
// The solver is purely deductive: it repeatedly applies human-traceable
// rules (cells next to a star, zone completions, region confinements, and
// invariants over every way of completing a zone) and prints each step,
// until the grid is solved or no rule makes progress.
//
// # Usage
//
//	star-battle <grille> [<nb étoiles>]
//
// <grille> is a text file with one grid line per text line, each character
// being a region label. Lines starting with '#', ';' or '@' are comments.
// The star count defaults to 1.
package main
