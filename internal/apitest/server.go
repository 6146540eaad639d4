// Package apitest runs an in-memory stand-in for the marketplace backend.
// The client layer under test talks to it over real HTTP; it implements the
// same REST surface, including the lifecycle and decision conflicts the real
// backend is responsible for.
package apitest

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"campusgig/internal/models"
)

const jwtSecret = "apitest-secret"

type professorRecord struct {
	models.Professor
	passwordHash string
}

type studentRecord struct {
	models.Student
	passwordHash string
}

type Server struct {
	mu sync.Mutex

	professors    map[string]*professorRecord
	students      map[string]*studentRecord
	gigs          map[string]*models.Gig
	gigOrder      []string
	applications  map[string]*models.Application
	appOrder      []string
	notifications map[string]*models.Notification
	notifOrder    []string

	httpServer *httptest.Server
}

// New starts the fake backend and registers cleanup on t.
func New(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		professors:    make(map[string]*professorRecord),
		students:      make(map[string]*studentRecord),
		gigs:          make(map[string]*models.Gig),
		applications:  make(map[string]*models.Application),
		notifications: make(map[string]*models.Notification),
	}

	router := gin.New()
	s.registerRoutes(router.Group("/api"))

	s.httpServer = httptest.NewServer(router)
	t.Cleanup(s.Close)
	return s
}

// URL is the base URL including the /api prefix, ready for api.NewClient.
func (s *Server) URL() string {
	return s.httpServer.URL + "/api"
}

func (s *Server) Close() {
	s.httpServer.Close()
}

func newID() string {
	return uuid.NewString()
}

func hashPassword(t *testing.T, raw string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hashed)
}

func hashPasswordRaw(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.MinCost)
	return string(hashed), err
}

func checkPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}

func issueToken(subject, id string, userType models.UserType) (string, error) {
	claims := jwt.MapClaims{
		"sub":       subject,
		"id":        id,
		"user_type": string(userType),
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

func parseToken(raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	claims, _ := token.Claims.(jwt.MapClaims)
	return claims, nil
}

// --- seed helpers for tests ---

// SeedProfessor inserts a professor directly, returning the record.
func (s *Server) SeedProfessor(t *testing.T, name, email, password string) models.Professor {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	record := &professorRecord{
		Professor: models.Professor{
			ID:         newID(),
			Name:       name,
			Email:      email,
			Department: "Computer Science",
		},
		passwordHash: hashPassword(t, password),
	}
	s.professors[record.ID] = record
	return record.Professor
}

// SeedStudent inserts a student directly, returning the record.
func (s *Server) SeedStudent(t *testing.T, name, email, password string) models.Student {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	record := &studentRecord{
		Student: models.Student{
			ID:         newID(),
			Name:       name,
			Email:      email,
			RegNo:      "RA" + newID()[:8],
			Department: "Computer Science",
			Year:       3,
		},
		passwordHash: hashPassword(t, password),
	}
	s.students[record.ID] = record
	return record.Student
}

// SeedNotification injects a notification, simulating a backend-side event.
func (s *Server) SeedNotification(userID string, userType models.UserType, title, message string) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := &models.Notification{
		ID:        newID(),
		UserID:    userID,
		UserType:  userType,
		Title:     title,
		Message:   message,
		Type:      models.NotificationTypeInfo,
		CreatedAt: time.Now().UTC(),
	}
	s.notifications[n.ID] = n
	s.notifOrder = append(s.notifOrder, n.ID)
	return *n
}

// Gig returns the server-side copy of a gig, for asserting backend state.
func (s *Server) Gig(gigID string) (models.Gig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gigs[gigID]
	if !ok {
		return models.Gig{}, false
	}
	return *g, true
}

// Application returns the server-side copy of an application.
func (s *Server) Application(applicationID string) (models.Application, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applications[applicationID]
	if !ok {
		return models.Application{}, false
	}
	return *a, true
}
