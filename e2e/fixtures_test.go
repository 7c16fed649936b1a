//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
)

type employee struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Department string   `json:"department"`
	Years      int      `json:"years"`
	JoinDate   string   `json:"joinDate"`
	Skills     []string `json:"skills"`
	Role       string   `json:"role"`
}

type searchResponse struct {
	Employees []employee `json:"employees"`
	Summary   string     `json:"summary"`
}

// ServiceOption is a function that configures the fake search service
type ServiceOption func(*fakeService)

// WithResponse makes every request answer with resp
func WithResponse(resp searchResponse) ServiceOption {
	return func(s *fakeService) {
		s.response = resp
	}
}

// WithStatus makes every request fail with an HTTP status
func WithStatus(code int) ServiceOption {
	return func(s *fakeService) {
		s.status = code
	}
}

// WithGate holds every request until the returned channel is closed
func WithGate(gate chan struct{}) ServiceOption {
	return func(s *fakeService) {
		s.gate = gate
	}
}

// fakeService is a stand-in for the employee search endpoint
type fakeService struct {
	server   *httptest.Server
	response searchResponse
	status   int
	gate     chan struct{}

	mu      sync.Mutex
	queries []string
}

func (s *fakeService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/api/employees/search" {
		http.NotFound(w, r)
		return
	}

	s.mu.Lock()
	s.queries = append(s.queries, r.URL.Query().Get("q"))
	s.mu.Unlock()

	if s.gate != nil {
		<-s.gate
	}
	if s.status != 0 {
		http.Error(w, "boom", s.status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.response)
}

// URL returns the service base URL
func (s *fakeService) URL() string {
	return s.server.URL
}

// Queries returns the q parameter of every request so far
func (s *fakeService) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func (s *fakeService) Close() {
	s.server.Close()
}

// StartService starts a fake search service the app will be pointed at
func (tf *TUITestFramework) StartService(options ...ServiceOption) *fakeService {
	s := &fakeService{}
	for _, opt := range options {
		opt(s)
	}
	s.server = httptest.NewServer(s)
	tf.service = s
	return s
}

// CreateTestWorkspace creates a temporary directory used as $HOME and cwd
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// ConfigPath is where the app under test reads and writes its config
func (tf *TUITestFramework) ConfigPath() string {
	return filepath.Join(tf.workspace, "empsearch.toml")
}

func sampleEmployees() []employee {
	return []employee{
		{
			Name:       "Ada Lovelace",
			Email:      "ada@co.com",
			Department: "Engineering",
			Years:      6,
			JoinDate:   "2018-01-01",
			Skills:     []string{"Python", "ML"},
			Role:       "Senior Engineer",
		},
		{
			Name:       "Grace Hopper",
			Email:      "grace@co.com",
			Department: "Research",
			Years:      12,
			JoinDate:   "2012-06-01",
			Skills:     []string{"COBOL"},
			Role:       "Principal Engineer",
		},
	}
}
