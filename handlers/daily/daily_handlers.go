package daily

import (
	"net/http"
	"time"

	"api/database"
	"api/github"
	"api/middleware"
	"api/models"
	"api/realtime"
	"api/services"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ListDaily returns the daily challenges for one date
// @Summary List daily challenges
// @Tags Daily
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today (KST)"
// @Success 200 {array} models.DailyProblem
// @Failure 500 {object} map[string]string
// @Router /daily [get]
func ListDaily(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = utils.KSTDate(time.Now())
	}

	var problems []models.DailyProblem
	if err := database.DB.Where("date = ?", date).
		Order("created_at asc").Find(&problems).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFetchFailed)
		return
	}
	response.Success(c, http.StatusOK, problems)
}

// CreateDaily registers a daily challenge. Only roster members may create.
// @Summary Create a daily challenge
// @Tags Daily
// @Accept json
// @Produce json
// @Param request body CreateDailyRequest true "Challenge details"
// @Success 201 {object} models.DailyProblem
// @Failure 400,401,403,409,500 {object} map[string]string
// @Router /daily [post]
func CreateDaily(c *gin.Context) {
	memberID, ok := resolveMember(c)
	if !ok {
		return
	}

	var req CreateDailyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		response.Error(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	problem := models.DailyProblem{
		Date:          req.Date,
		Source:        req.Source,
		ProblemNumber: req.ProblemNumber,
		ProblemTitle:  req.ProblemTitle,
		CreatedBy:     memberID,
	}
	if err := database.DB.Create(&problem).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			response.Error(c, http.StatusConflict, ErrDuplicate)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrSaveFailed)
		return
	}

	realtime.Notify(realtime.ChangeEvent{Topic: realtime.DailyTopic, UpdateType: "new"})
	c.JSON(http.StatusCreated, problem)
}

// DeleteDaily removes a daily challenge its creator registered
// @Summary Delete a daily challenge
// @Tags Daily
// @Produce json
// @Param id path string true "Challenge id"
// @Success 200 {object} map[string]bool
// @Failure 401,403,404,500 {object} map[string]string
// @Router /daily/{id} [delete]
func DeleteDaily(c *gin.Context) {
	memberID, ok := resolveMember(c)
	if !ok {
		return
	}

	var problem models.DailyProblem
	if err := database.DB.Where("id = ?", c.Param("id")).First(&problem).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Error(c, http.StatusNotFound, ErrDailyNotFound)
		} else {
			response.Error(c, http.StatusInternalServerError, ErrFetchFailed)
		}
		return
	}

	if problem.CreatedBy != memberID {
		response.Error(c, http.StatusForbidden, "You can only delete challenges you created")
		return
	}

	if err := database.DB.Delete(&problem).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrDeleteFailed)
		return
	}

	realtime.Notify(realtime.ChangeEvent{Topic: realtime.DailyTopic, UpdateType: "delete"})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// resolveMember maps the authenticated session to a roster member id
func resolveMember(c *gin.Context) (string, bool) {
	handle := c.GetString(middleware.ContextGithubHandle)

	roster, err := services.LoadRoster(c.Request.Context(), github.Default)
	if err != nil {
		log.WithError(err).Error("failed to load roster")
		response.Error(c, http.StatusInternalServerError, "Could not load the member roster")
		return "", false
	}

	memberID, ok := services.ResolveMember(roster, handle)
	if !ok {
		response.Error(c, http.StatusForbidden, ErrNotRosterMember)
		return "", false
	}
	return memberID, true
}
