package submissions

import (
	"net/http"
	"regexp"
	"strings"
	"time"

	"api/cache"
	"api/config"
	"api/github"
	"api/metrics"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Submit handles a new submission or an edit of an existing one
// @Summary Submit solution code
// @Description Commits a solution file to the study repository, allocating the next version, or updates an existing file in edit mode
// @Tags Submissions
// @Accept json
// @Produce json
// @Param request body SubmitRequest true "Submission details"
// @Success 201 {object} SubmitResponse
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /submit [post]
func Submit(c *gin.Context) {
	if !config.MutationConfigured() {
		response.Error(c, http.StatusInternalServerError, ErrServerConfig)
		return
	}

	memberID, member, ok := resolveCaller(c)
	if !ok {
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrMissingFields)
		return
	}

	if req.Source == "" || req.ProblemNumber == "" || req.Code == "" {
		response.Error(c, http.StatusBadRequest, ErrMissingFields)
		return
	}
	if req.Source != "swea" && req.Source != "boj" {
		response.Error(c, http.StatusBadRequest, ErrInvalidSource)
		return
	}
	if !digitsOnly.MatchString(req.ProblemNumber) {
		response.Error(c, http.StatusBadRequest, ErrInvalidNumber)
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		response.Error(c, http.StatusBadRequest, ErrEmptyCode)
		return
	}
	if req.Week != "" && !utils.IsValidWeek(req.Week) {
		response.Error(c, http.StatusBadRequest, ErrInvalidWeek)
		return
	}

	author := commitAuthor(member)

	if req.EditPath != "" {
		editSubmission(c, memberID, member, req, author)
		return
	}

	week := req.Week
	if week == "" {
		week = utils.CurrentWeek(time.Now())
	}
	problemKey := req.Source + "-" + req.ProblemNumber

	// The allocator works off the live directory listing so repeated submits
	// of the same problem never reuse a version number
	dirPath := memberID + "/" + week
	entries, err := github.Default.ListDirectory(c.Request.Context(), dirPath)
	if err != nil {
		upstreamError(c, "create", err)
		return
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}

	_, filename := services.AllocateVersion(names, problemKey)
	filePath := dirPath + "/" + filename
	name := strings.TrimSuffix(filename, ".py")

	message := "Add " + name + " by " + member.Name
	if err := github.Default.PutFile(c.Request.Context(), filePath, message, []byte(req.Code), "", author); err != nil {
		upstreamError(c, "create", err)
		return
	}
	invalidateAfterMutation(filePath)
	metrics.SubmissionCounter.WithLabelValues("create", "success").Inc()

	c.JSON(http.StatusCreated, SubmitResponse{
		Success:  true,
		Path:     filePath,
		MemberID: memberID,
		Week:     week,
		Name:     name,
	})
}

// editSubmission updates one existing file in place. The current content sha
// is fetched first and passed as the update precondition, so a concurrent
// write to the same path makes the store reject this one instead of silently
// losing it.
func editSubmission(c *gin.Context, memberID string, member models.Member, req SubmitRequest, author github.CommitAuthor) {
	if !strings.HasPrefix(req.EditPath, memberID+"/") {
		response.Error(c, http.StatusForbidden, ErrNotOwnPath)
		return
	}

	meta, err := github.Default.FileMeta(c.Request.Context(), req.EditPath)
	if err != nil {
		if github.NotFound(err) {
			response.Error(c, http.StatusNotFound, ErrEditTargetMissing)
			return
		}
		upstreamError(c, "edit", err)
		return
	}

	parts := strings.Split(req.EditPath, "/")
	name := req.Source + "-" + req.ProblemNumber
	week := ""
	if len(parts) == 3 {
		week = parts[1]
		name = strings.TrimSuffix(parts[2], ".py")
	}

	message := "Update " + name + " by " + member.Name
	if err := github.Default.PutFile(c.Request.Context(), req.EditPath, message, []byte(req.Code), meta.SHA, author); err != nil {
		upstreamError(c, "edit", err)
		return
	}
	invalidateAfterMutation(req.EditPath)
	metrics.SubmissionCounter.WithLabelValues("edit", "success").Inc()

	c.JSON(http.StatusCreated, SubmitResponse{
		Success:  true,
		Path:     req.EditPath,
		MemberID: memberID,
		Week:     week,
		Name:     name,
	})
}

// resolveCaller maps the authenticated session to a roster member. Identity
// always comes from the session, never from the request body.
func resolveCaller(c *gin.Context) (string, models.Member, bool) {
	handle := c.GetString(middleware.ContextGithubHandle)

	roster, err := services.LoadRoster(c.Request.Context(), github.Default)
	if err != nil {
		log.WithError(err).Error("failed to load roster")
		response.Error(c, http.StatusInternalServerError, ErrRosterUnavailable)
		return "", models.Member{}, false
	}

	memberID, ok := services.ResolveMember(roster, handle)
	if !ok {
		response.Error(c, http.StatusForbidden, ErrNotRosterMember)
		return "", models.Member{}, false
	}

	entry := roster[memberID]
	return memberID, models.Member{ID: memberID, Name: entry.Name, Github: entry.Github}, true
}

// commitAuthor derives the fixed commit identity from the acting member's
// external handle
func commitAuthor(member models.Member) github.CommitAuthor {
	return github.CommitAuthor{
		Name:  member.Github,
		Email: member.Github + "@users.noreply.github.com",
	}
}

// invalidateAfterMutation drops the read-cache entries a successful mutation
// made stale, so the next read reflects the write
func invalidateAfterMutation(path string) {
	store := github.Default.Cache()
	store.Invalidate(cache.KeyTree)
	store.Invalidate(cache.KeyFile(path))
}

func upstreamError(c *gin.Context, kind string, err error) {
	metrics.SubmissionCounter.WithLabelValues(kind, "upstream_error").Inc()
	log.WithError(err).Error("content store mutation failed")
	response.ErrorWithDetails(c, http.StatusInternalServerError, ErrUpstream, err.Error())
}
