package endpoint

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ariebrainware/inet-clinic/middleware"
	"github.com/ariebrainware/inet-clinic/repository"
	"github.com/ariebrainware/inet-clinic/util"
	"github.com/gin-gonic/gin"
)

// repositoryFrom builds a Repository over the request's database handle. It
// writes a 500 and returns false when no handle was injected.
func repositoryFrom(c *gin.Context) (*repository.Repository, bool) {
	db := middleware.GetDB(c)
	if db == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Database connection not available",
			Err: fmt.Errorf("db is nil"),
		})
		return nil, false
	}
	return repository.New(db), true
}

// parseIDParam reads a numeric path parameter, answering 400 otherwise.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: fmt.Sprintf("Invalid %s", name),
			Err: err,
		})
		return 0, false
	}
	return uint(id), true
}

func bindRequest(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: fmt.Sprintf("Invalid request body: %v", err),
			Err: err,
		})
		return false
	}
	return true
}

// respondRow writes row, a 404 with notFoundMsg, or a 500 depending on err.
func respondRow(c *gin.Context, row interface{}, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		util.CallErrorNotFound(c, notFoundMsg)
	case err != nil:
		util.CallServerError(c, util.APIErrorParams{Err: err})
	default:
		util.CallSuccessOK(c, row)
	}
}

func respondCreated(c *gin.Context, msg, idKey string, id uint, err error) {
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Err: err})
		return
	}
	util.CallSuccessOK(c, gin.H{"message": msg, idKey: id})
}

func respondChanged(c *gin.Context, msg string, changes int64, err error) {
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Err: err})
		return
	}
	util.CallSuccessOK(c, ChangesResponse{Message: msg, Changes: changes})
}

func respondDeleted(c *gin.Context, msg string, err error) {
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Err: err})
		return
	}
	util.CallSuccessOK(c, util.MessageResponse{Message: msg})
}

// ChangesResponse acknowledges an update with the number of affected rows.
type ChangesResponse struct {
	Message string `json:"message" example:"Doctor updated successfully"`
	Changes int64  `json:"changes" example:"1"`
}
