package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/ratmaze/maze"
	"github.com/katalvlaran/ratmaze/route"
	"github.com/katalvlaran/ratmaze/strategy"
)

// ErrBadMaze is returned when the maze field is neither an object nor a matrix.
var ErrBadMaze = errors.New("server: maze must be an adjacency object or a square matrix")

// Server routes HTTP requests to per-game agents.
type Server struct {
	cfg    strategy.Config
	log    *slog.Logger
	engine *gin.Engine

	mu       sync.Mutex
	sessions map[uuid.UUID]*session
}

// session is one game: its agent and the current maze.
type session struct {
	mu            sync.Mutex
	agent         *strategy.Agent
	graph         maze.Graph
	width, height int
}

type createRequest struct {
	Width    int             `json:"width" binding:"required,gt=0"`
	Height   int             `json:"height" binding:"required,gt=0"`
	Maze     json.RawMessage `json:"maze" binding:"required"`
	Position int             `json:"position"`
	Cheese   []int           `json:"cheese"`
}

type turnRequest struct {
	Position int             `json:"position"`
	Cheese   []int           `json:"cheese"`
	Maze     json.RawMessage `json:"maze"`
}

type createResponse struct {
	ID string `json:"id"`
}

type turnResponse struct {
	Action route.Action `json:"action"`
}

// New validates cfg and builds the router.
func New(cfg strategy.Config, log *slog.Logger) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	s := &Server{
		cfg:      cfg,
		log:      log,
		sessions: make(map[uuid.UUID]*session),
	}

	r := gin.New()
	r.Use(requestLogger(log), gin.Recovery())
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	v1 := r.Group("/v1")
	v1.POST("/games", s.create)
	v1.POST("/games/:id/turn", s.turn)
	v1.DELETE("/games/:id", s.finish)
	s.engine = r

	return s, nil
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Sessions returns the number of live games.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (s *Server) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	g, err := decodeMaze(req.Width, req.Height, req.Maze)
	if err != nil {
		badRequest(c, err)
		return
	}
	pos, cheese, err := vertices(g, req.Position, req.Cheese)
	if err != nil {
		badRequest(c, err)
		return
	}

	planner, err := strategy.NewPlanner(s.cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	id := uuid.New()
	agent := strategy.NewAgent(planner, strategy.WithLogger(s.log.With(slog.String("game", id.String()))))
	if err := agent.Preprocessing(g, pos, cheese); err != nil {
		if !errors.Is(err, strategy.ErrNoReachableTarget) {
			badRequest(c, err)
			return
		}
		// the game goes on; turns fall back to Stay until something is reachable
		s.log.Warn("preprocessing", slog.String("game", id.String()), slog.Any("err", err))
	}

	s.mu.Lock()
	s.sessions[id] = &session{agent: agent, graph: g, width: req.Width, height: req.Height}
	s.mu.Unlock()

	c.JSON(http.StatusCreated, createResponse{ID: id.String()})
}

func (s *Server) turn(c *gin.Context) {
	sess, ok := s.lookup(c)
	if !ok {
		return
	}
	var req turnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if len(bytes.TrimSpace(req.Maze)) > 0 && !bytes.Equal(bytes.TrimSpace(req.Maze), []byte("null")) {
		g, err := decodeMaze(sess.width, sess.height, req.Maze)
		if err != nil {
			badRequest(c, err)
			return
		}
		sess.graph = g
		sess.agent.Invalidate()
	}
	pos, cheese, err := vertices(sess.graph, req.Position, req.Cheese)
	if err != nil {
		badRequest(c, err)
		return
	}

	c.JSON(http.StatusOK, turnResponse{Action: sess.agent.Turn(sess.graph, pos, cheese)})
}

func (s *Server) finish(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return
	}
	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		notFound(c, id)
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	c.JSON(http.StatusOK, sess.agent.Postprocessing())
}

// lookup resolves :id, writing the error response itself on failure.
func (s *Server) lookup(c *gin.Context) (*session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return nil, false
	}
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		notFound(c, id)
		return nil, false
	}

	return sess, true
}

// decodeMaze accepts an adjacency object or a weight matrix.
func decodeMaze(width, height int, raw json.RawMessage) (maze.Graph, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, ErrBadMaze
	}
	switch raw[0] {
	case '{':
		var adj map[int]map[int]int
		if err := json.Unmarshal(raw, &adj); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadMaze, err)
		}

		return maze.FromRepresentation(width, height, adj)
	case '[':
		var matrix [][]int
		if err := json.Unmarshal(raw, &matrix); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadMaze, err)
		}

		return maze.FromRepresentation(width, height, matrix)
	}

	return nil, ErrBadMaze
}

// vertices checks the position and cheese cells against g.
func vertices(g maze.Graph, position int, cheese []int) (maze.Vertex, []maze.Vertex, error) {
	pos := maze.Vertex(position)
	if !g.Has(pos) {
		return 0, nil, fmt.Errorf("position %d: %w", position, maze.ErrInvalidVertex)
	}
	out := make([]maze.Vertex, len(cheese))
	for i, v := range cheese {
		if !g.Has(maze.Vertex(v)) {
			return 0, nil, fmt.Errorf("cheese %d: %w", v, maze.ErrInvalidVertex)
		}
		out[i] = maze.Vertex(v)
	}

	return pos, out, nil
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func notFound(c *gin.Context, id uuid.UUID) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("game %s not found", id)})
}

// requestLogger logs one line per request at Info (Warn for 4xx/5xx).
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}
		log.LogAttrs(c.Request.Context(), level, "request",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)))
	}
}
