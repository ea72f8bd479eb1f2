package submissions

import (
	"net/http"

	"api/github"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ListSubmissions returns the parsed submission collection
// @Summary List submissions
// @Description Returns all submissions parsed from the repository tree, optionally filtered by member, week or source
// @Tags Submissions
// @Produce json
// @Param member query string false "Member id"
// @Param week query string false "Week token"
// @Param source query string false "Source filter (swea, boj, etc)"
// @Success 200 {array} models.Submission
// @Failure 500 {object} map[string]string
// @Router /submissions [get]
func ListSubmissions(c *gin.Context) {
	subs, _, ok := loadParsed(c)
	if !ok {
		return
	}
	filtered := services.FilterSubmissions(subs, c.Query("member"), c.Query("week"), c.Query("source"))
	response.Success(c, http.StatusOK, filtered)
}

// ListWeeks returns the distinct week tokens present, newest first
// @Summary List weeks
// @Tags Submissions
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} map[string]string
// @Router /submissions/weeks [get]
func ListWeeks(c *gin.Context) {
	subs, _, ok := loadParsed(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, services.ExtractWeeks(subs))
}

// GetFile returns a submission's code and sibling note
// @Summary Get file content
// @Description Fetches the raw code of a submission, its note when one exists, and the effective source after any in-file annotation override
// @Tags Submissions
// @Produce json
// @Param path query string true "Submission path"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]string
// @Router /submissions/file [get]
func GetFile(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		response.Error(c, http.StatusBadRequest, "path query parameter is required")
		return
	}

	code, err := github.Default.FileContent(c.Request.Context(), path)
	if err != nil {
		if github.NotFound(err) {
			response.Error(c, http.StatusNotFound, "File not found")
			return
		}
		response.ErrorWithDetails(c, http.StatusInternalServerError, ErrUpstream, err.Error())
		return
	}

	// Classify from the filename, then let an in-file annotation override it
	parts := splitPath(path)
	source := services.ParseSource(parts[len(parts)-1])
	if override := services.SourceFromCode(code); override != "" {
		source = override
	}

	result := gin.H{"code": code, "source": source}

	// A sibling note shares the base path with a .md extension
	if notePath, ok := siblingNote(path); ok {
		note, err := github.Default.FileContent(c.Request.Context(), notePath)
		if err == nil {
			result["note"] = note
		} else if !github.NotFound(err) {
			log.WithError(err).Warn("failed to fetch note file")
		}
	}

	response.Success(c, http.StatusOK, result)
}

// GetMatrix returns the weekly progress matrix
// @Summary Weekly progress matrix
// @Tags Submissions
// @Produce json
// @Param week query string true "Week token"
// @Param source query string false "Source filter"
// @Success 200 {object} services.WeeklyMatrixView
// @Failure 400,500 {object} map[string]string
// @Router /submissions/matrix [get]
func GetMatrix(c *gin.Context) {
	week := c.Query("week")
	if week == "" {
		response.Error(c, http.StatusBadRequest, "week query parameter is required")
		return
	}

	subs, roster, ok := loadParsed(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, services.WeeklyMatrix(subs, roster, week, c.Query("source")))
}

// GetOtherSolutions returns all submissions sharing a submission's problem
// @Summary Other solutions to the same problem
// @Tags Submissions
// @Produce json
// @Param id query string true "Submission id (member/week/name)"
// @Success 200 {array} models.Submission
// @Failure 400,404,500 {object} map[string]string
// @Router /submissions/others [get]
func GetOtherSolutions(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "id query parameter is required")
		return
	}

	subs, _, ok := loadParsed(c)
	if !ok {
		return
	}
	for _, sub := range subs {
		if sub.ID == id {
			response.Success(c, http.StatusOK, services.OtherSolutions(subs, sub))
			return
		}
	}
	response.Error(c, http.StatusNotFound, "Submission not found")
}
