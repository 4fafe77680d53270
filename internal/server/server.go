// Package server binds the Circuit Facade (spec.md §4.6) to a thin gin
// REST API, the transport the UI collaborator of spec.md §6 calls
// instead of an in-process API. Grounded in kegliz/qplay's gin usage
// (one handler per API call, JSON in/out, no business logic in the
// handler itself).
package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/xDarkicex/circuitsim/core"
	"github.com/xDarkicex/circuitsim/engine"
	"github.com/xDarkicex/circuitsim/minimize"
)

// Server wraps one Circuit behind gin handlers. circuitsim's engine is
// single-threaded and synchronous (spec.md §5); every handler runs to
// completion before the next request is dispatched, matching the
// engine's own "exclusive access during any call" requirement as long
// as the embedding gin.Engine isn't run with overlapping goroutines
// calling the same Server concurrently.
type Server struct {
	circuit *engine.Circuit
	log     zerolog.Logger
}

// New wraps circuit for HTTP access.
func New(circuit *engine.Circuit, log zerolog.Logger) *Server {
	return &Server{circuit: circuit, log: log}
}

// Routes registers circuitsim's handlers on r.
func (s *Server) Routes(r *gin.Engine) {
	r.POST("/components", s.handleAddComponent)
	r.POST("/connect", s.handleConnect)
	r.POST("/state/:id", s.handleSetState)
	r.POST("/clock/pulse", s.handlePulseClock)
	r.GET("/truth-table", s.handleTruthTable)
}

type addComponentRequest struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Input bool   `json:"input"`
	Value bool   `json:"value"`
}

func (s *Server) handleAddComponent(c *gin.Context) {
	var req addComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Input {
		id := s.circuit.AddInput(req.Label, req.Value)
		c.JSON(http.StatusOK, gin.H{"id": id})
		return
	}

	id, err := s.circuit.AddComponent(req.Kind, req.Label)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

type connectRequest struct {
	Receiver core.ID `json:"receiver"`
	Pin      int     `json:"pin"`
	Emitter  core.ID `json:"emitter"`
}

func (s *Server) handleConnect(c *gin.Context) {
	var req connectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.circuit.Connect(req.Receiver, req.Pin, req.Emitter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type setStateRequest struct {
	Value bool `json:"value"`
}

func (s *Server) handleSetState(c *gin.Context) {
	id, ok := parseIDParam(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req setStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.circuit.SetState(id, req.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) handlePulseClock(c *gin.Context) {
	if err := s.circuit.PulseClock(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// handleTruthTable runs the truth-table generator and, per
// SPEC_FULL.md §3, additionally runs the minimizer over every tracked
// output and returns both.
func (s *Server) handleTruthTable(c *gin.Context) {
	table, err := s.circuit.TruthTable()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cols := table.Columns()
	rows := make([][]string, 0, len(table.Rows()))
	for _, row := range table.Rows() {
		rendered := make([]string, len(row))
		for i, v := range row {
			if v {
				rendered[i] = "1"
			} else {
				rendered[i] = "0"
			}
		}
		rows = append(rows, rendered)
	}

	minimized := minimize.Minimize(table, s.circuit.DrivingLabels(), s.circuit.OutputLabels())

	c.JSON(http.StatusOK, gin.H{
		"columns":   cols,
		"rows":      rows,
		"minimized": minimized,
	})
}

func parseIDParam(s string) (core.ID, bool) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return core.ID(v), true
}
