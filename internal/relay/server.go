package relay

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"primecount/internal/domain"
)

// maxBody caps the size of a posted run.
const maxBody = 1 << 20

type memoryStore struct {
	mu   sync.RWMutex
	runs []domain.Comparison
}

// Server is the in-memory collector that PublishRun talks to.
type Server struct {
	store *memoryStore
	log   logrus.FieldLogger
	mux   *http.ServeMux
}

// NewServer returns a collector with empty state. A nil logger discards
// access logs.
func NewServer(log logrus.FieldLogger) *Server {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	s := &Server{store: &memoryStore{}, log: log, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /runs", s.handlePost)
	s.mux.HandleFunc("GET /runs", s.handleList)
	return s
}

// ServeHTTP routes the request and writes an access log line.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r)
	s.log.WithFields(logrus.Fields{
		"method":   r.Method,
		"path":     r.URL.Path,
		"remote":   r.RemoteAddr,
		"status":   rec.status,
		"bytes":    rec.bytes,
		"duration": time.Since(start),
	}).Info("request")
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var run domain.Comparison
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBody)).Decode(&run); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.store.mu.Lock()
	s.store.runs = append(s.store.runs, run)
	s.store.mu.Unlock()
	w.WriteHeader(http.StatusAccepted)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.store.mu.RLock()
	runs := append([]domain.Comparison{}, s.store.runs...)
	s.store.mu.RUnlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(runs)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}
