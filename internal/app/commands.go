package app

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"campusgig/internal/models"
)

// Run dispatches one CLI invocation. Professor- and student-only commands go
// through the route guard with the path of the page they stand in for.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError()
	}

	switch args[0] {
	case "register":
		return a.cmdRegister(ctx, args[1:])
	case "login":
		return a.cmdLogin(ctx, args[1:])
	case "logout":
		a.Logout()
		fmt.Println("signed out")
		return nil
	case "whoami":
		return a.cmdWhoami()
	case "gigs":
		return a.cmdGigs(ctx, args[1:])
	case "apps":
		return a.cmdApps(ctx, args[1:])
	case "notifications":
		return a.cmdNotifications(ctx, args[1:])
	default:
		return usageError()
	}
}

func usageError() error {
	return fmt.Errorf("usage: campusgig <register|login|logout|whoami|gigs|apps|notifications> ...")
}

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	name := fs.String("name", "", "full name")
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	department := fs.String("department", "", "department")
	student := fs.Bool("student", false, "register as a student")
	regNo := fs.String("regno", "", "registration number (students)")
	year := fs.Int("year", 0, "year of study (students)")
	qualification := fs.String("qualification", "", "qualification (professors)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *student {
		created, err := a.Client.StudentRegister(ctx, models.StudentRegisterRequest{
			Name:       *name,
			Email:      *email,
			Password:   *password,
			RegNo:      *regNo,
			Department: *department,
			Year:       *year,
		})
		if err != nil {
			return err
		}
		fmt.Printf("registered student %s, sign in with campusgig login -student\n", created.ID)
		return nil
	}

	created, err := a.Client.Register(ctx, models.RegisterRequest{
		Name:          *name,
		Email:         *email,
		Password:      *password,
		Department:    *department,
		Qualification: *qualification,
	})
	if err != nil {
		return err
	}
	fmt.Printf("registered professor %s, sign in with campusgig login\n", created.ID)
	return nil
}

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	student := fs.Bool("student", false, "sign in as a student")
	if err := fs.Parse(args); err != nil {
		return err
	}

	userType := models.UserTypeProfessor
	if *student {
		userType = models.UserTypeStudent
	}
	if err := a.Login(ctx, *email, *password, userType); err != nil {
		return err
	}
	fmt.Printf("signed in as %s\n", userType)
	return nil
}

func (a *App) cmdWhoami() error {
	session := a.Session.Session()
	if !session.IsAuthenticated {
		fmt.Println("not signed in")
		return nil
	}
	fmt.Printf("%s %s\n", session.UserType, session.UserID)
	return nil
}

func (a *App) cmdGigs(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: campusgig gigs <browse|list|create|update|close|hold|activate|delete> ...")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "browse":
		fs := flag.NewFlagSet("gigs browse", flag.ContinueOnError)
		status := fs.String("status", "", "filter by status")
		professor := fs.String("professor", "", "filter by professor id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := a.Gigs.BrowseGigs(ctx, models.GigFilter{
			Status:      models.GigStatus(*status),
			ProfessorID: *professor,
		}); err != nil {
			return err
		}
		printGigs(a.Gigs.Gigs())
		return nil

	case "list":
		if err := a.Authorize("/professor/dashboard"); err != nil {
			return err
		}
		if err := a.Gigs.FetchGigs(ctx, a.Session.Session().UserID); err != nil {
			return err
		}
		printGigs(a.Gigs.Gigs())
		return nil

	case "create":
		if err := a.Authorize("/professor/gigs/new"); err != nil {
			return err
		}
		fs := flag.NewFlagSet("gigs create", flag.ContinueOnError)
		title := fs.String("title", "", "gig title")
		description := fs.String("description", "", "gig description")
		area := fs.String("area", "", "area of study")
		technologies := fs.String("technologies", "", "technologies")
		timeline := fs.String("timeline", "", "timeline")
		funded := fs.Bool("funded", false, "funded position")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		created, err := a.Gigs.CreateGig(ctx, models.GigCreate{
			ProfessorID:  a.Session.Session().UserID,
			Title:        *title,
			Description:  *description,
			AreaOfStudy:  *area,
			Technologies: *technologies,
			Timeline:     *timeline,
			Funded:       *funded,
		})
		if err != nil {
			return err
		}
		fmt.Printf("created gig %s (%s)\n", created.ID, created.Status)
		return nil

	case "update":
		if err := a.Authorize("/professor/gigs/edit"); err != nil {
			return err
		}
		fs := flag.NewFlagSet("gigs update", flag.ContinueOnError)
		id := fs.String("id", "", "gig id")
		title := fs.String("title", "", "new title")
		description := fs.String("description", "", "new description")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		req := models.GigUpdate{}
		if *title != "" {
			req.Title = title
		}
		if *description != "" {
			req.Description = description
		}
		updated, err := a.Gigs.UpdateGig(ctx, *id, req)
		if err != nil {
			return err
		}
		fmt.Printf("updated gig %s\n", updated.ID)
		return nil

	case "close":
		if err := a.Authorize("/professor/gigs"); err != nil {
			return err
		}
		fs := flag.NewFlagSet("gigs close", flag.ContinueOnError)
		id := fs.String("id", "", "gig id")
		link := fs.String("link", "", "publication link")
		venue := fs.String("venue", "", "publication venue")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		closed, err := a.Gigs.CloseGig(ctx, *id, models.GigClose{
			PublicationLink:  *link,
			PublicationVenue: *venue,
		})
		if err != nil {
			return err
		}
		fmt.Printf("gig %s is now %s\n", closed.ID, closed.Status)
		return nil

	case "hold":
		if err := a.Authorize("/professor/gigs"); err != nil {
			return err
		}
		fs := flag.NewFlagSet("gigs hold", flag.ContinueOnError)
		id := fs.String("id", "", "gig id")
		reason := fs.String("reason", "", "reason for pausing")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		held, err := a.Gigs.HoldGig(ctx, *id, models.GigHold{PausedReason: *reason})
		if err != nil {
			return err
		}
		fmt.Printf("gig %s is now %s\n", held.ID, held.Status)
		return nil

	case "activate":
		if err := a.Authorize("/professor/gigs"); err != nil {
			return err
		}
		fs := flag.NewFlagSet("gigs activate", flag.ContinueOnError)
		id := fs.String("id", "", "gig id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		activated, err := a.Gigs.ActivateGig(ctx, *id)
		if err != nil {
			return err
		}
		fmt.Printf("gig %s is now %s\n", activated.ID, activated.Status)
		return nil

	case "delete":
		if err := a.Authorize("/professor/gigs"); err != nil {
			return err
		}
		fs := flag.NewFlagSet("gigs delete", flag.ContinueOnError)
		id := fs.String("id", "", "gig id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := a.Gigs.DeleteGig(ctx, *id); err != nil {
			return err
		}
		fmt.Printf("deleted gig %s\n", *id)
		return nil

	default:
		return fmt.Errorf("unknown gigs command %q", sub)
	}
}

func (a *App) cmdApps(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: campusgig apps <list|apply|accept|reject> ...")
	}
	sub, rest := args[0], args[1:]

	switch sub {
	case "list":
		if err := a.Authorize("/professor/gigs/applications"); err != nil {
			return err
		}
		fs := flag.NewFlagSet("apps list", flag.ContinueOnError)
		gig := fs.String("gig", "", "gig id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		apps, err := a.Applications.ListForGig(ctx, *gig)
		if err != nil {
			return err
		}
		for _, application := range apps {
			fmt.Printf("%s  %-9s %s <%s>\n", application.ID, application.Status, application.StudentName, application.StudentEmail)
		}
		return nil

	case "apply":
		if err := a.Authorize("/student/gigs/apply"); err != nil {
			return err
		}
		fs := flag.NewFlagSet("apps apply", flag.ContinueOnError)
		gig := fs.String("gig", "", "gig id")
		name := fs.String("name", "", "student name")
		email := fs.String("email", "", "student email")
		resume := fs.String("resume", "", "resume link")
		cover := fs.String("cover", "", "cover letter")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		studentID := a.Session.Session().UserID

		// The existence check replaces the form with the current status when
		// the student already applied.
		check, err := a.Applications.CheckExists(ctx, *gig, studentID)
		if err != nil {
			return err
		}
		if check.HasApplied {
			fmt.Printf("already applied, status: %s\n", check.Application.Status)
			return nil
		}

		created, err := a.Applications.Create(ctx, models.ApplicationCreate{
			GigID:        *gig,
			StudentID:    studentID,
			StudentName:  *name,
			StudentEmail: *email,
			ResumeLink:   *resume,
			CoverLetter:  *cover,
		})
		if err != nil {
			return err
		}
		fmt.Printf("applied, status: %s\n", created.Status)
		return nil

	case "accept", "reject":
		if err := a.Authorize("/professor/gigs/applications"); err != nil {
			return err
		}
		fs := flag.NewFlagSet("apps "+sub, flag.ContinueOnError)
		id := fs.String("id", "", "application id")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		var decided *models.Application
		var err error
		if sub == "accept" {
			decided, err = a.Applications.Accept(ctx, *id)
		} else {
			decided, err = a.Applications.Reject(ctx, *id)
		}
		if err != nil {
			return err
		}
		fmt.Printf("application %s is now %s\n", decided.ID, decided.Status)
		return nil

	default:
		return fmt.Errorf("unknown apps command %q", sub)
	}
}

func (a *App) cmdNotifications(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("notifications", flag.ContinueOnError)
	watch := fs.Bool("watch", false, "keep polling until interrupted")
	if err := fs.Parse(args); err != nil {
		return err
	}

	poller, err := a.NewPoller()
	if err != nil {
		return err
	}

	if !*watch {
		if err := poller.Refresh(ctx); err != nil {
			return err
		}
		printNotifications(poller)
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	poller.Start(ctx)
	defer poller.Stop()

	for {
		printNotifications(poller)
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(5 * time.Second):
		}
	}
}

func printGigs(gigs []models.Gig) {
	for _, g := range gigs {
		line := fmt.Sprintf("%s  %-8s %s [%s]", g.ID, g.Status, g.Title, g.AreaOfStudy)
		if g.Status == models.GigStatusOnHold && g.PausedReason != "" {
			line += " paused: " + g.PausedReason
		}
		if g.Status == models.GigStatusClosed && g.PublicationVenue != "" {
			line += " published at " + g.PublicationVenue
		}
		fmt.Println(line)
	}
}

func printNotifications(poller interface {
	Notifications() []models.Notification
	UnreadCount() int
}) {
	items := poller.Notifications()
	fmt.Printf("-- %d notifications (%d unread) --\n", len(items), poller.UnreadCount())
	for _, n := range items {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		fmt.Printf("%s [%s] %s: %s\n", marker, n.Type, n.Title, strings.TrimSpace(n.Message))
	}
}
