package endpoint

import (
	"errors"

	"github.com/ariebrainware/inet-clinic/model"
	"github.com/ariebrainware/inet-clinic/repository"
	"github.com/ariebrainware/inet-clinic/util"
	"github.com/gin-gonic/gin"
)

// ListTreatments godoc
// @Summary      List treatments
// @Description  Every treatment joined with its doctor and patient names
// @Tags         Treatment
// @Produce      json
// @Success      200 {array} model.TreatmentListing
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /treatment [get]
func ListTreatments(c *gin.Context) {
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	treatments, err := repo.ListTreatments(c.Request.Context())
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Err: err})
		return
	}
	util.CallSuccessOK(c, treatments)
}

// GetTreatment godoc
// @Summary      Get a treatment
// @Tags         Treatment
// @Produce      json
// @Param        id path int true "Treatment ID"
// @Success      200 {object} model.Treatment
// @Failure      404 {object} util.MessageResponse "Treatment not found"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /treatment-edit/{id} [get]
func GetTreatment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	treatment, err := repo.GetTreatment(c.Request.Context(), id)
	respondRow(c, treatment, err, "Treatment not found")
}

// CreateTreatment godoc
// @Summary      Create a treatment
// @Description  doctorID and patientID must reference existing rows
// @Tags         Treatment
// @Accept       json
// @Produce      json
// @Param        request body model.TreatmentRequest true "Treatment"
// @Success      200 {object} map[string]interface{} "message and treatmentID"
// @Failure      400 {object} util.ErrorResponse "Invalid request body"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /treatment [post]
func CreateTreatment(c *gin.Context) {
	var req model.TreatmentRequest
	if !bindRequest(c, &req) {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	id, err := repo.CreateTreatment(c.Request.Context(), req.Treatment())
	respondCreated(c, "Treatment added successfully", "treatmentID", id, err)
}

// UpdateTreatment godoc
// @Summary      Update a treatment
// @Tags         Treatment
// @Accept       json
// @Produce      json
// @Param        id path int true "Treatment ID"
// @Param        request body model.TreatmentRequest true "Treatment"
// @Success      200 {object} ChangesResponse
// @Failure      400 {object} util.ErrorResponse "Invalid request"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /treatment/{id} [put]
func UpdateTreatment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req model.TreatmentRequest
	if !bindRequest(c, &req) {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	changes, err := repo.UpdateTreatment(c.Request.Context(), id, req.Treatment())
	respondChanged(c, "Treatment updated successfully", changes, err)
}

// DeleteTreatment godoc
// @Summary      Delete a treatment
// @Description  Removes the treatment details first, then the treatment
// @Tags         Treatment
// @Produce      json
// @Param        id path int true "Treatment ID"
// @Success      200 {object} util.MessageResponse
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /treatment/{id} [delete]
func DeleteTreatment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}

	err := repo.DeleteTreatment(c.Request.Context(), id)
	switch {
	case errors.Is(err, repository.ErrDeleteTreatmentDetails):
		util.CallServerError(c, util.APIErrorParams{Msg: "Error deleting related treatment details", Err: err})
	case errors.Is(err, repository.ErrDeleteTreatment):
		util.CallServerError(c, util.APIErrorParams{Msg: "Error deleting treatment", Err: err})
	default:
		respondDeleted(c, "Treatment and related treatment details deleted successfully", err)
	}
}
