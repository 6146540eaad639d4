package apitest

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"campusgig/internal/models"
)

// detail mirrors the backend's failure envelope.
func detail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"detail": msg})
}

func (s *Server) registerRoutes(api *gin.RouterGroup) {
	api.POST("/auth/register", s.handleProfessorRegister)
	api.POST("/auth/login", s.handleProfessorLogin)
	api.GET("/auth/me", s.handleMe)

	api.POST("/gigs", s.handleCreateGig)
	api.GET("/gigs", s.handleListGigs)
	api.GET("/gigs/professor/:id", s.handleProfessorGigs)
	api.GET("/gigs/:id", s.handleGetGig)
	api.PUT("/gigs/:id", s.handleUpdateGig)
	api.PUT("/gigs/:id/close", s.handleCloseGig)
	api.PUT("/gigs/:id/hold", s.handleHoldGig)
	api.PUT("/gigs/:id/activate", s.handleActivateGig)
	api.DELETE("/gigs/:id", s.handleDeleteGig)

	api.POST("/applications", s.handleCreateApplication)
	api.GET("/applications/gig/:id", s.handleGigApplications)
	api.GET("/applications/check/:id/:studentId", s.handleCheckApplication)
	api.PUT("/applications/:id/status", s.handleApplicationStatus)

	api.POST("/professors", s.handleCreateProfessor)
	api.GET("/professors", s.handleListProfessors)
	api.GET("/professors/:id", s.handleGetProfessor)
	api.PUT("/professors/:id", s.handleUpdateProfessor)

	api.POST("/students/register", s.handleStudentRegister)
	api.POST("/students/login", s.handleStudentLogin)
	api.GET("/students/:id", s.handleGetStudent)
	api.PUT("/students/:id", s.handleUpdateStudent)
	api.GET("/students/:id/applications", s.handleStudentApplications)

	api.GET("/notifications/:id", s.handleUserNotifications)
	api.GET("/notifications/:id/unread", s.handleUnreadCount)
	api.PUT("/notifications/:id/read", s.handleMarkRead)
	api.PUT("/notifications/:id/mark-all-read", s.handleMarkAllRead)
	api.DELETE("/notifications/:id", s.handleDeleteNotification)
}

// --- auth ---

func (s *Server) handleProfessorRegister(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		detail(c, http.StatusBadRequest, "name, email and password are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.professors {
		if p.Email == req.Email {
			detail(c, http.StatusBadRequest, "Email already registered")
			return
		}
	}
	hash, err := hashPasswordRaw(req.Password)
	if err != nil {
		detail(c, http.StatusInternalServerError, "hash password")
		return
	}
	record := &professorRecord{
		Professor: models.Professor{
			ID:                   newID(),
			Name:                 req.Name,
			Email:                req.Email,
			Department:           req.Department,
			CollegeName:          req.CollegeName,
			Qualification:        req.Qualification,
			ResearchAreas:        req.ResearchAreas,
			ExperienceYears:      req.ExperienceYears,
			PreviousPublications: req.PreviousPublications,
		},
		passwordHash: hash,
	}
	s.professors[record.ID] = record
	c.JSON(http.StatusCreated, record.Professor)
}

func (s *Server) handleProfessorLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.professors {
		if p.Email == req.Email {
			if !checkPassword(p.passwordHash, req.Password) {
				break
			}
			token, err := issueToken(p.Email, p.ID, models.UserTypeProfessor)
			if err != nil {
				detail(c, http.StatusInternalServerError, "issue token")
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"access_token": token,
				"token_type":   "bearer",
				"professor_id": p.ID,
			})
			return
		}
	}
	detail(c, http.StatusUnauthorized, "Incorrect email or password")
}

func (s *Server) handleMe(c *gin.Context) {
	claims, err := parseToken(c.Query("token"))
	if err != nil {
		detail(c, http.StatusUnauthorized, "Could not validate credentials")
		return
	}
	email, _ := claims["sub"].(string)
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.professors {
		if p.Email == email {
			c.JSON(http.StatusOK, p.Professor)
			return
		}
	}
	detail(c, http.StatusNotFound, "User not found")
}

// --- gigs ---

func (s *Server) handleCreateGig(c *gin.Context) {
	var req models.GigCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" || req.AreaOfStudy == "" || req.ProfessorID == "" {
		detail(c, http.StatusBadRequest, "title, description, area_of_study and professor_id are required")
		return
	}
	gig := &models.Gig{
		ID:              newID(),
		ProfessorID:     req.ProfessorID,
		Title:           req.Title,
		Description:     req.Description,
		AreaOfStudy:     req.AreaOfStudy,
		Technologies:    req.Technologies,
		TargetType:      req.TargetType,
		PaperType:       req.PaperType,
		Timeline:        req.Timeline,
		YearRequirement: req.YearRequirement,
		CGPARequirement: req.CGPARequirement,
		Funded:          req.Funded,
		CandidateCount:  req.CandidateCount,
		Status:          models.GigStatusOpen,
	}
	s.mu.Lock()
	s.gigs[gig.ID] = gig
	s.gigOrder = append(s.gigOrder, gig.ID)
	s.mu.Unlock()
	c.JSON(http.StatusCreated, gig)
}

func (s *Server) handleListGigs(c *gin.Context) {
	status := c.Query("status")
	professorID := c.Query("professor_id")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Gig, 0)
	for _, id := range s.gigOrder {
		g, ok := s.gigs[id]
		if !ok {
			continue
		}
		if status != "" && string(g.Status) != status {
			continue
		}
		if professorID != "" && g.ProfessorID != professorID {
			continue
		}
		out = append(out, *g)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleProfessorGigs(c *gin.Context) {
	professorID := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Gig, 0)
	for _, id := range s.gigOrder {
		if g, ok := s.gigs[id]; ok && g.ProfessorID == professorID {
			out = append(out, *g)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetGig(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gigs[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Gig not found")
		return
	}
	c.JSON(http.StatusOK, g)
}

func (s *Server) handleUpdateGig(c *gin.Context) {
	var req models.GigUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gigs[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Gig not found")
		return
	}
	if req.Title != nil {
		g.Title = *req.Title
	}
	if req.Description != nil {
		g.Description = *req.Description
	}
	if req.AreaOfStudy != nil {
		g.AreaOfStudy = *req.AreaOfStudy
	}
	if req.Technologies != nil {
		g.Technologies = *req.Technologies
	}
	if req.TargetType != nil {
		g.TargetType = *req.TargetType
	}
	if req.PaperType != nil {
		g.PaperType = *req.PaperType
	}
	if req.Timeline != nil {
		g.Timeline = *req.Timeline
	}
	if req.YearRequirement != nil {
		g.YearRequirement = *req.YearRequirement
	}
	if req.CGPARequirement != nil {
		g.CGPARequirement = *req.CGPARequirement
	}
	if req.Funded != nil {
		g.Funded = *req.Funded
	}
	if req.CandidateCount != nil {
		g.CandidateCount = *req.CandidateCount
	}
	c.JSON(http.StatusOK, g)
}

func (s *Server) handleCloseGig(c *gin.Context) {
	var req models.GigClose
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gigs[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Gig not found")
		return
	}
	if g.Status != models.GigStatusOpen {
		detail(c, http.StatusConflict, "Gig is not open")
		return
	}
	g.Status = models.GigStatusClosed
	if req.PublicationLink != "" {
		g.PublicationLink = req.PublicationLink
	}
	if req.PublicationVenue != "" {
		g.PublicationVenue = req.PublicationVenue
	}
	c.JSON(http.StatusOK, g)
}

func (s *Server) handleHoldGig(c *gin.Context) {
	var req models.GigHold
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.PausedReason == "" {
		detail(c, http.StatusBadRequest, "paused_reason is required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gigs[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Gig not found")
		return
	}
	if g.Status != models.GigStatusOpen {
		detail(c, http.StatusConflict, "Gig is not open")
		return
	}
	g.Status = models.GigStatusOnHold
	g.PausedReason = req.PausedReason
	c.JSON(http.StatusOK, g)
}

func (s *Server) handleActivateGig(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.gigs[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Gig not found")
		return
	}
	if g.Status != models.GigStatusOnHold {
		detail(c, http.StatusConflict, "Gig is not on hold")
		return
	}
	g.Status = models.GigStatusOpen
	g.PausedReason = ""
	c.JSON(http.StatusOK, g)
}

func (s *Server) handleDeleteGig(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.Param("id")
	if _, ok := s.gigs[id]; !ok {
		detail(c, http.StatusNotFound, "Gig not found")
		return
	}
	delete(s.gigs, id)
	c.Status(http.StatusNoContent)
}

// --- applications ---

func (s *Server) handleCreateApplication(c *gin.Context) {
	var req models.ApplicationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.GigID == "" || req.StudentID == "" || req.StudentName == "" || req.StudentEmail == "" || req.ResumeLink == "" {
		detail(c, http.StatusBadRequest, "gig_id, student_id, student_name, student_email and resume_link are required")
		return
	}
	// No uniqueness enforcement here: the real backend does not close the
	// duplicate-application race either, the client-side existence check is
	// the only gate.
	app := &models.Application{
		ID:           newID(),
		GigID:        req.GigID,
		StudentID:    req.StudentID,
		StudentName:  req.StudentName,
		StudentEmail: req.StudentEmail,
		StudentYear:  req.StudentYear,
		StudentCGPA:  req.StudentCGPA,
		ResumeLink:   req.ResumeLink,
		CoverLetter:  req.CoverLetter,
		Status:       models.ApplicationStatusPending,
		AppliedAt:    time.Now().UTC(),
	}
	s.mu.Lock()
	s.applications[app.ID] = app
	s.appOrder = append(s.appOrder, app.ID)
	s.mu.Unlock()
	c.JSON(http.StatusCreated, app)
}

func (s *Server) handleGigApplications(c *gin.Context) {
	gigID := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Application, 0)
	for _, id := range s.appOrder {
		if a, ok := s.applications[id]; ok && a.GigID == gigID {
			out = append(out, *a)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleCheckApplication(c *gin.Context) {
	gigID := c.Param("id")
	studentID := c.Param("studentId")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.appOrder {
		if a, ok := s.applications[id]; ok && a.GigID == gigID && a.StudentID == studentID {
			c.JSON(http.StatusOK, models.ApplicationCheck{HasApplied: true, Application: a})
			return
		}
	}
	c.JSON(http.StatusOK, models.ApplicationCheck{HasApplied: false})
}

func (s *Server) handleApplicationStatus(c *gin.Context) {
	status := models.ApplicationStatus(c.Query("status"))
	if !models.DecidedApplicationStatus(status) {
		detail(c, http.StatusBadRequest, "Invalid status")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.applications[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Application not found")
		return
	}
	if a.Status != models.ApplicationStatusPending {
		detail(c, http.StatusConflict, "Application already decided")
		return
	}
	a.Status = status
	c.JSON(http.StatusOK, a)
}

// --- professors ---

func (s *Server) handleCreateProfessor(c *gin.Context) {
	var req models.Professor
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.professors {
		if p.Email == req.Email {
			detail(c, http.StatusBadRequest, "Professor with this email already exists")
			return
		}
	}
	req.ID = newID()
	s.professors[req.ID] = &professorRecord{Professor: req}
	c.JSON(http.StatusCreated, req)
}

func (s *Server) handleListProfessors(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Professor, 0, len(s.professors))
	for _, p := range s.professors {
		out = append(out, p.Professor)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetProfessor(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.professors[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Professor not found")
		return
	}
	c.JSON(http.StatusOK, p.Professor)
}

func (s *Server) handleUpdateProfessor(c *gin.Context) {
	var req models.ProfessorUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.professors[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Professor not found")
		return
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Department != nil {
		p.Department = *req.Department
	}
	if req.CollegeName != nil {
		p.CollegeName = *req.CollegeName
	}
	if req.Qualification != nil {
		p.Qualification = *req.Qualification
	}
	if req.ResearchAreas != nil {
		p.ResearchAreas = *req.ResearchAreas
	}
	if req.ExperienceYears != nil {
		p.ExperienceYears = *req.ExperienceYears
	}
	if req.PreviousPublications != nil {
		p.PreviousPublications = *req.PreviousPublications
	}
	c.JSON(http.StatusOK, p.Professor)
}

// --- students ---

func (s *Server) handleStudentRegister(c *gin.Context) {
	var req models.StudentRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.RegNo == "" {
		detail(c, http.StatusBadRequest, "name, email, password and reg_no are required")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.students {
		if existing.Email == req.Email {
			detail(c, http.StatusBadRequest, "Email already registered")
			return
		}
		if existing.RegNo == req.RegNo {
			detail(c, http.StatusBadRequest, "Registration number already exists")
			return
		}
	}
	hash, err := hashPasswordRaw(req.Password)
	if err != nil {
		detail(c, http.StatusInternalServerError, "hash password")
		return
	}
	record := &studentRecord{
		Student: models.Student{
			ID:          newID(),
			Name:        req.Name,
			Email:       req.Email,
			RegNo:       req.RegNo,
			Department:  req.Department,
			Year:        req.Year,
			CollegeName: req.CollegeName,
		},
		passwordHash: hash,
	}
	s.students[record.ID] = record
	c.JSON(http.StatusCreated, record.Student)
}

func (s *Server) handleStudentLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.students {
		if st.Email == req.Email {
			if !checkPassword(st.passwordHash, req.Password) {
				break
			}
			token, err := issueToken(st.ID, st.ID, models.UserTypeStudent)
			if err != nil {
				detail(c, http.StatusInternalServerError, "issue token")
				return
			}
			student := st.Student
			c.JSON(http.StatusOK, gin.H{
				"access_token": token,
				"token_type":   "bearer",
				"student_id":   st.ID,
				"student":      student,
			})
			return
		}
	}
	detail(c, http.StatusUnauthorized, "Invalid email or password")
}

func (s *Server) handleGetStudent(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.students[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Student not found")
		return
	}
	c.JSON(http.StatusOK, st.Student)
}

func (s *Server) handleUpdateStudent(c *gin.Context) {
	var req models.StudentUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.students[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Student not found")
		return
	}
	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Department != nil {
		st.Department = *req.Department
	}
	if req.Year != nil {
		st.Year = *req.Year
	}
	if req.CollegeName != nil {
		st.CollegeName = *req.CollegeName
	}
	if req.Skills != nil {
		st.Skills = *req.Skills
	}
	if req.ResumeURL != nil {
		st.ResumeURL = *req.ResumeURL
	}
	if req.Bio != nil {
		st.Bio = *req.Bio
	}
	c.JSON(http.StatusOK, st.Student)
}

func (s *Server) handleStudentApplications(c *gin.Context) {
	studentID := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Application, 0)
	for _, id := range s.appOrder {
		if a, ok := s.applications[id]; ok && a.StudentID == studentID {
			out = append(out, *a)
		}
	}
	c.JSON(http.StatusOK, out)
}

// --- notifications ---

func (s *Server) handleUserNotifications(c *gin.Context) {
	userID := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, 0)
	// Most recent first, matching the backend's sort.
	for i := len(s.notifOrder) - 1; i >= 0; i-- {
		if n, ok := s.notifications[s.notifOrder[i]]; ok && n.UserID == userID {
			out = append(out, *n)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleUnreadCount(c *gin.Context) {
	userID := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

func (s *Server) handleMarkRead(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[c.Param("id")]
	if !ok {
		detail(c, http.StatusNotFound, "Notification not found")
		return
	}
	n.Read = true
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleMarkAllRead(c *gin.Context) {
	userID := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	modified := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.Read {
			n.Read = true
			modified++
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "modified_count": modified})
}

func (s *Server) handleDeleteNotification(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := c.Param("id")
	if _, ok := s.notifications[id]; !ok {
		detail(c, http.StatusNotFound, "Notification not found")
		return
	}
	delete(s.notifications, id)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
