// Package cmd implements the star-battle command line.
package cmd

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ddurler/star-battle/pkg/common"
	"github.com/ddurler/star-battle/pkg/model"
	"github.com/ddurler/star-battle/pkg/parser"
	"github.com/ddurler/star-battle/pkg/solver"
	"github.com/ddurler/star-battle/pkg/ui"
)

// helpMessage is the user help, example grid included.
const helpMessage = `
STAR BATTLE Usage: ./star-battle <grille> {<nb étoiles>}

<grille> est le nom d'un fichier contenant une grille à résoudre.
<nb_étoiles> est le nombre d'étoiles à placer dans chaque ligne, colonne et région de la grille.
Par défaut, ce nombre d'étoile est 1.

Le fichier <grille> définit chaque région de la grille par un caractère.
Par exemple :

# Exemple de grille 1★ avec 5 régions 'A', 'B', 'C', 'D' et 'E'
ABBBB
ABBBB
CCBBB
DDDDD
DEEED
`

// helpArgs are the positional arguments that trigger the help message.
var helpArgs = []string{"-h", "--help", "aide"}

var (
	verbose bool
	logFile string
)

// rootCmd solves the grid file given as first positional argument.
var rootCmd = &cobra.Command{
	Use:   "star-battle <grille> [<nb étoiles>]",
	Short: "Résolveur de grilles Star Battle",
	Args:  cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		common.VerboseEnabled = verbose
		common.LogFile = logFile
		run(args)
	},
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		common.Info("%s", helpMessage)
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "n'affiche pas l'indicateur de progression")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "recopie la sortie dans un fichier")
}

// run interprets the positional arguments: a grid file name and an
// optional star count (1 by default). A wrong argument count or a help
// argument prints the help message; a star count that is not a number,
// file errors and grid errors are reported on stdout.
func run(args []string) {
	var fileName string
	nbStars := 1

	switch len(args) {
	case 1:
		fileName = args[0]
	case 2:
		fileName = args[0]
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			common.Info("Le nombre d'étoiles doit être un nombre")
			return
		}
		nbStars = parsed
	default:
		common.Info("%s", helpMessage)
		return
	}

	for _, helpArg := range helpArgs {
		if strings.EqualFold(fileName, helpArg) {
			common.Info("%s", helpMessage)
			return
		}
	}

	content, err := os.ReadFile(fileName)
	if err != nil {
		common.Info("Erreur dans le fichier %s: %v", fileName, err)
		return
	}

	parsed, err := parser.Parse(string(content))
	if err != nil {
		common.Info("Erreur dans le fichier %s: %v", fileName, err)
		return
	}

	solve(parsed, nbStars)
}

// solve runs the deduction loop and prints every step.
func solve(parsed *parser.Grid, nbStars int) {
	desc := solver.NewDescriptor(parsed, nbStars)
	grid := desc.NewGrid()

	common.Info("\nGrid %d★\n%s", nbStars, desc.Display(grid, true))

	spin := ui.NewSpinner("Résolution...")
	spin.Start()
	nbRules := 0

	done, err := solver.Solve(desc, grid, func(rule *solver.GoodRule, g *model.Grid) {
		nbRules++
		spin.UpdateMessage("Résolution... (%d règles)", nbRules)
		spin.LogInfo("%s", rule)
		spin.LogInfo("\n%s", desc.Display(g, true))
	})
	spin.Stop()

	if err != nil {
		common.Info("%v !!!", err)
	}

	if done {
		common.Info("Grille résolue !\n")
	} else {
		common.Info("Grille non résolue :(\n")
	}
}
