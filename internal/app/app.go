// Package app wires the stores, workflow and poller together and exposes the
// command surface of the CLI front end.
package app

import (
	"context"
	"fmt"
	"time"

	"campusgig/internal/api"
	"campusgig/internal/config"
	"campusgig/internal/guard"
	"campusgig/internal/models"
	"campusgig/internal/notify"
	"campusgig/internal/storage"
	"campusgig/internal/store"
	"campusgig/internal/validator"
	"campusgig/internal/workflow"
)

type App struct {
	cfg *config.Config

	Client       *api.Client
	Session      *store.SessionStore
	Gigs         *store.GigStore
	Professor    *store.ProfessorStore
	Student      *store.StudentStore
	Applications *workflow.ApplicationWorkflow
}

// New assembles the application. The persisted session, if any, is restored so
// a restart keeps the user signed in.
func New(cfg *config.Config) (*App, error) {
	db, err := storage.Open(cfg.Session.Path)
	if err != nil {
		return nil, err
	}
	sessionRepo := storage.NewSessionRepository(db)
	session := store.NewSessionStore(sessionRepo)
	if err := session.Restore(); err != nil {
		return nil, err
	}

	client := api.NewClient(cfg.API.BaseURL, session, nil)
	validate := validator.New()

	return &App{
		cfg:          cfg,
		Client:       client,
		Session:      session,
		Gigs:         store.NewGigStore(client, validate),
		Professor:    store.NewProfessorStore(client),
		Student:      store.NewStudentStore(client),
		Applications: workflow.NewApplicationWorkflow(client, validate),
	}, nil
}

// Login authenticates against the role-specific endpoint and populates the
// session store from the response.
func (a *App) Login(ctx context.Context, email, password string, userType models.UserType) error {
	req := models.LoginRequest{Email: email, Password: password}

	var resp *models.AuthResponse
	var err error
	if userType == models.UserTypeStudent {
		resp, err = a.Client.StudentLogin(ctx, req)
	} else {
		resp, err = a.Client.Login(ctx, req)
	}
	if err != nil {
		return err
	}
	a.Session.SetAuth(resp.AccessToken, resp.UserID(), userType)
	return nil
}

// Logout clears the session and the profile caches.
func (a *App) Logout() {
	a.Session.Logout()
	a.Professor.Clear()
	a.Student.Clear()
}

// Authorize runs the route guard for the given path and returns an error
// naming the redirect target when the subtree may not render.
func (a *App) Authorize(path string) error {
	decision := guard.Evaluate(a.Session.Session(), path)
	if !decision.Allow {
		return fmt.Errorf("not allowed here, go to %s", decision.RedirectTo)
	}
	return nil
}

// NewPoller builds a notification poller for the signed-in user.
func (a *App) NewPoller() (*notify.Poller, error) {
	session := a.Session.Session()
	if !session.IsAuthenticated {
		return nil, fmt.Errorf("sign in first")
	}
	interval := notify.DefaultInterval
	if s := a.cfg.Notifications.PollIntervalSeconds; s > 0 {
		interval = time.Duration(s) * time.Second
	}
	return notify.NewPoller(a.Client, session.UserID, interval), nil
}
