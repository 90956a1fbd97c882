package session

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/logger"
	"github.com/Epistemic-Technology/pdf-reader-mcp/internal/pdf"
	"github.com/Epistemic-Technology/pdf-reader-mcp/models"
)

// Listener is notified after the set of open sessions changes. The server
// uses it to keep the protocol resource list in sync, which is what drives
// list-changed notifications to connected clients.
type Listener interface {
	SessionOpened(s *Session)
	SessionClosed(s *Session)
}

// Registry owns the table of open sessions for the life of the process.
// One lock guards open/close/lookup; nothing is evicted automatically.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	tempRoot string
	listener Listener
	log      logger.Logger
}

// NewRegistry creates an empty registry. tempRoot is the directory under
// which per-session image directories are created; empty selects the OS
// temp directory.
func NewRegistry(tempRoot string, log logger.Logger) *Registry {
	if tempRoot == "" {
		tempRoot = os.TempDir()
	}
	return &Registry{
		sessions: make(map[string]*Session),
		tempRoot: tempRoot,
		log:      log,
	}
}

// SetListener registers the listener notified on open and close. Call
// before the registry starts serving.
func (r *Registry) SetListener(l Listener) {
	r.listener = l
}

// SessionID derives the stable session id for an absolute path: URL-safe
// base64 of the path truncated to 12 bytes. Collisions from truncation are
// tolerated; the id is deterministic per path.
func SessionID(absPath string) string {
	id := base64.URLEncoding.EncodeToString([]byte(absPath))
	if len(id) > 12 {
		id = id[:12]
	}
	return id
}

// Open normalizes and validates path, parses it as a PDF, and registers a
// session for it. No session is created on failure. Re-opening a path that
// is already open yields the same id; the replaced session's handle is
// released rather than leaked.
func (r *Registry) Open(path string) (*Session, error) {
	abs, err := pdf.NormalizePath(path)
	if err != nil {
		return nil, models.InvalidArgumentf("Invalid path: %v", err)
	}
	if err := pdf.ValidatePath(abs); err != nil {
		return nil, err
	}
	doc, err := pdf.Open(abs)
	if err != nil {
		return nil, err
	}

	id := SessionID(abs)
	s := &Session{
		id:     id,
		path:   abs,
		doc:    doc,
		images: make(map[int][]string),
		imgDir: filepath.Join(r.tempRoot, "pdf_reader_"+id),
		log:    r.log,
	}

	r.mu.Lock()
	old := r.sessions[id]
	r.sessions[id] = s
	r.mu.Unlock()

	if old != nil {
		r.log.Info("Session %s re-opened, releasing previous handle for %s", id, old.path)
		old.release()
	}
	r.log.Info("Opened PDF %s with %d pages (session %s)", abs, doc.PageCount(), id)

	if r.listener != nil {
		r.listener.SessionOpened(s)
	}
	return s, nil
}

// Close removes the session and releases its handle, image cache, and image
// directory. Fails with a not-found error if the id is absent.
func (r *Registry) Close(id string) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		return nil, models.NotFoundf("Session not found: %s", id)
	}
	s.release()
	r.log.Info("Closed PDF %s (session %s)", s.path, id)

	if r.listener != nil {
		r.listener.SessionClosed(s)
	}
	return s, nil
}

// Get looks up an open session by id.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// List returns a snapshot of the open sessions, sorted by id for
// deterministic listings.
func (r *Registry) List() []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// CloseAll releases every open session. Used on shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	sessions := make([]*Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.release()
	}
}
