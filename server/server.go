package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridsnake/grid"
	"github.com/katalvlaran/gridsnake/render"
	"github.com/katalvlaran/gridsnake/snake"
)

// Coord is the JSON form of a lattice point.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// SolveRequest describes the grid to solve and the strategy to use.
// Method is optional and defaults to "recursive".
type SolveRequest struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Start  Coord  `json:"start"`
	End    Coord  `json:"end"`
	Method string `json:"method,omitempty"`
}

// SolveResponse reports the solve outcome. Path and Diagram are present
// only when Found is true. ExecutionTimeMs measures the solve call alone,
// not request handling.
type SolveResponse struct {
	Found           bool    `json:"found"`
	Path            []Coord `json:"path,omitempty"`
	Diagram         string  `json:"diagram,omitempty"`
	Method          string  `json:"method"`
	ExecutionTimeMs float64 `json:"executionTimeMs"`
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter() *gin.Engine {
	router := gin.Default()
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.POST("/api/solve", solveHandler)

	return router
}

func solveHandler(c *gin.Context) {
	var req SolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})

		return
	}

	method := snake.Recursive
	if req.Method != "" {
		var err error
		if method, err = snake.ParseMethod(req.Method); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

			return
		}
	}

	g, err := grid.New(req.Width, req.Height,
		grid.Point{X: req.Start.X, Y: req.Start.Y},
		grid.Point{X: req.End.X, Y: req.End.Y})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	started := time.Now()
	res, err := snake.Solve(g, snake.WithMethod(method))
	elapsed := time.Since(started)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	resp := SolveResponse{
		Found:           res.Found,
		Method:          method.String(),
		ExecutionTimeMs: float64(elapsed) / float64(time.Millisecond),
	}
	if res.Found {
		resp.Path = make([]Coord, len(res.Path))
		for i, p := range res.Path {
			resp.Path[i] = Coord{X: p.X, Y: p.Y}
		}
		if diagram, derr := render.Diagram(g, res.Path); derr == nil {
			resp.Diagram = diagram
		}
	}

	c.JSON(http.StatusOK, resp)
}
