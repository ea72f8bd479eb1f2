package members

import (
	"fmt"
	"net/http"
	"time"

	"api/github"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ListMembers returns the roster
// @Summary List study-group members
// @Tags Members
// @Produce json
// @Success 200 {array} models.Member
// @Failure 500 {object} map[string]string
// @Router /members [get]
func ListMembers(c *gin.Context) {
	roster, ok := loadRoster(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, roster.Members())
}

// GetMemberSubmissions returns one member's submissions grouped by week
// @Summary Member detail view
// @Description A member's submissions grouped by week (newest first), each group in parser order
// @Tags Members
// @Produce json
// @Param id path string true "Member id"
// @Success 200 {array} services.WeekGroup
// @Failure 404,500 {object} map[string]string
// @Router /members/{id}/submissions [get]
func GetMemberSubmissions(c *gin.Context) {
	memberID := c.Param("id")

	subs, roster, _, ok := loadAll(c, false)
	if !ok {
		return
	}
	if !roster.Has(memberID) {
		response.Error(c, http.StatusNotFound, "Member not found")
		return
	}

	mine := services.FilterSubmissions(subs, memberID, "", "")
	response.Success(c, http.StatusOK, services.GroupByWeek(mine))
}

// GetActivity returns each member's commit dates and streak
// @Summary Member activity
// @Description Per-member distinct commit dates (KST) and current weekday streak, derived from repository history
// @Tags Members
// @Produce json
// @Success 200 {object} models.Activities
// @Failure 500 {object} map[string]string
// @Router /activity [get]
func GetActivity(c *gin.Context) {
	roster, ok := loadRoster(c)
	if !ok {
		return
	}

	activities, err := services.FetchActivity(c.Request.Context(), github.Default, roster)
	if err != nil {
		log.WithError(err).Error("failed to aggregate activity")
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Could not load activity", err.Error())
		return
	}
	response.Success(c, http.StatusOK, activities)
}

// GetLeaderboard returns a ranking over the roster
// @Summary Leaderboard
// @Description Ranks members by total submissions, current streak, or submissions in the most recent week
// @Tags Members
// @Produce json
// @Param by query string false "Ranking: total (default), streak or weekly"
// @Success 200 {array} services.RankingEntry
// @Failure 400,500 {object} map[string]string
// @Router /leaderboard [get]
func GetLeaderboard(c *gin.Context) {
	by := c.DefaultQuery("by", "total")
	if by != "total" && by != "streak" && by != "weekly" {
		response.Error(c, http.StatusBadRequest, "by must be total, streak or weekly")
		return
	}

	subs, roster, activities, ok := loadAll(c, by == "streak")
	if !ok {
		return
	}

	var entries []services.RankingEntry
	switch by {
	case "streak":
		entries = services.RankStreaks(activities, roster)
	case "weekly":
		entries = services.RankWeekly(subs, roster)
	default:
		entries = services.RankTotals(subs, roster)
	}
	response.Success(c, http.StatusOK, entries)
}

// ExportLeaderboard streams the leaderboards as an xlsx workbook
// @Summary Export leaderboard
// @Tags Members
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {object} map[string]string
// @Router /leaderboard/export [get]
func ExportLeaderboard(c *gin.Context) {
	subs, roster, activities, ok := loadAll(c, true)
	if !ok {
		return
	}

	buf, err := services.ExportLeaderboard(subs, activities, roster)
	if err != nil {
		log.WithError(err).Error("failed to build export workbook")
		response.Error(c, http.StatusInternalServerError, "Could not build the export")
		return
	}

	filename := fmt.Sprintf("sootudy-leaderboard-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func loadRoster(c *gin.Context) (models.Roster, bool) {
	roster, err := services.LoadRoster(c.Request.Context(), github.Default)
	if err != nil {
		log.WithError(err).Error("failed to load roster")
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Could not load the member roster", err.Error())
		return nil, false
	}
	return roster, true
}

// loadAll gathers everything the ranking views need. Activity aggregation is
// only performed when the view actually ranks by streak; the export needs it
// always.
func loadAll(c *gin.Context, withActivity bool) ([]models.Submission, models.Roster, models.Activities, bool) {
	roster, ok := loadRoster(c)
	if !ok {
		return nil, nil, nil, false
	}

	tree, err := github.Default.Tree(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("failed to load repository tree")
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Content store error", err.Error())
		return nil, nil, nil, false
	}
	subs := services.ParseTree(tree, roster)

	var activities models.Activities
	if withActivity {
		activities, err = services.FetchActivity(c.Request.Context(), github.Default, roster)
		if err != nil {
			log.WithError(err).Error("failed to aggregate activity")
			response.ErrorWithDetails(c, http.StatusInternalServerError, "Could not load activity", err.Error())
			return nil, nil, nil, false
		}
	}
	return subs, roster, activities, true
}
