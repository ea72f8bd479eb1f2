package submissions

import (
	"net/http"
	"strings"

	"api/github"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// loadParsed joins the two independent reads every view needs (tree and
// roster) and runs the parser over them
func loadParsed(c *gin.Context) ([]models.Submission, models.Roster, bool) {
	type treeResult struct {
		items []github.TreeItem
		err   error
	}
	treeCh := make(chan treeResult, 1)
	go func() {
		items, err := github.Default.Tree(c.Request.Context())
		treeCh <- treeResult{items, err}
	}()

	roster, err := services.LoadRoster(c.Request.Context(), github.Default)
	tree := <-treeCh

	if err != nil {
		log.WithError(err).Error("failed to load roster")
		response.ErrorWithDetails(c, http.StatusInternalServerError, ErrRosterUnavailable, err.Error())
		return nil, nil, false
	}
	if tree.err != nil {
		log.WithError(tree.err).Error("failed to load repository tree")
		response.ErrorWithDetails(c, http.StatusInternalServerError, ErrUpstream, tree.err.Error())
		return nil, nil, false
	}

	return services.ParseTree(tree.items, roster), roster, true
}

func splitPath(path string) []string {
	return strings.Split(path, "/")
}

// siblingNote returns the note path for a code path, when the path has a
// code extension at all
func siblingNote(path string) (string, bool) {
	if !strings.HasSuffix(path, ".py") {
		return "", false
	}
	return strings.TrimSuffix(path, ".py") + ".md", true
}
