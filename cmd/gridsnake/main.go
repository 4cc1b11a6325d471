package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsnake/grid"
	"github.com/katalvlaran/gridsnake/render"
	"github.com/katalvlaran/gridsnake/snake"
)

var (
	gridWidth  int
	gridHeight int
	startArg   string
	endArg     string
	methodArg  string
	quiet      bool
)

func main() {
	command := &cobra.Command{
		Use:   "gridsnake",
		Short: "find a path visiting every point of a rectangular grid exactly once",
		Run:   run,
	}
	command.Flags().IntVarP(&gridWidth, "width", "W", 5, "grid width in points")
	command.Flags().IntVarP(&gridHeight, "height", "H", 5, "grid height in points")
	command.Flags().StringVar(&startArg, "start", "0,0", "start point as x,y")
	command.Flags().StringVar(&endArg, "end", "0,4", "end point as x,y")
	command.Flags().StringVarP(&methodArg, "method", "m", "recursive", "solve method: recursive or iterative")
	command.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the arrow diagram")
	command.AddCommand(serveCommand())
	if err := command.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// parsePoint parses an "x,y" flag value.
func parsePoint(arg string) (grid.Point, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 2 {
		return grid.Point{}, fmt.Errorf("expected x,y but got %q", arg)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Point{}, fmt.Errorf("parse x of %q: %w", arg, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Point{}, fmt.Errorf("parse y of %q: %w", arg, err)
	}

	return grid.Point{X: x, Y: y}, nil
}

func run(cmd *cobra.Command, args []string) {
	start, err := parsePoint(startArg)
	if err != nil {
		logrus.Fatal("start: ", err)
	}
	end, err := parsePoint(endArg)
	if err != nil {
		logrus.Fatal("end: ", err)
	}
	method, err := snake.ParseMethod(methodArg)
	if err != nil {
		logrus.Fatal(err)
	}
	g, err := grid.New(gridWidth, gridHeight, start, end)
	if err != nil {
		logrus.Fatal(err)
	}

	fmt.Printf("Solving with %s method:\n", method)
	startTime := time.Now()
	res, err := snake.Solve(g, snake.WithMethod(method))
	elapsed := time.Since(startTime)
	if err != nil {
		logrus.Fatal(err)
	}

	if res.Found {
		fmt.Printf("\tSolution path found: %s\n", render.Coords(res.Path))
		if !quiet {
			diagram, derr := render.Diagram(g, res.Path)
			if derr != nil {
				logrus.Fatal("render diagram: ", derr)
			}
			fmt.Printf("\n%s\n\n", diagram)
		}
	} else {
		fmt.Println("\tNo solution path found.")
	}
	fmt.Printf("\tElapsed time: %.2f seconds\n", elapsed.Seconds())
}
