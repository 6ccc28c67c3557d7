package endpoint

import (
	"github.com/ariebrainware/inet-clinic/model"
	"github.com/ariebrainware/inet-clinic/util"
	"github.com/gin-gonic/gin"
)

// ListTreatmentDetails godoc
// @Summary      List the details of a treatment
// @Description  Details joined with their treatment, patient and doctor
// @Tags         TreatmentDetail
// @Produce      json
// @Param        treatmentID path int true "Treatment ID"
// @Success      200 {array} model.TreatmentDetailListing
// @Failure      404 {object} util.MessageResponse "No treatment details found"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /treatment-details/{treatmentID} [get]
func ListTreatmentDetails(c *gin.Context) {
	treatmentID, ok := parseIDParam(c, "treatmentID")
	if !ok {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	details, err := repo.ListTreatmentDetails(c.Request.Context(), treatmentID)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Err: err})
		return
	}
	if len(details) == 0 {
		util.CallErrorNotFound(c, "No treatment details found for the given treatmentID")
		return
	}
	util.CallSuccessOK(c, details)
}

// GetTreatmentDetail godoc
// @Summary      Get a treatment detail
// @Tags         TreatmentDetail
// @Produce      json
// @Param        id path int true "Treatment detail ID"
// @Success      200 {object} model.TreatmentDetail
// @Failure      404 {object} util.MessageResponse "Treatment detail not found"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /treatment-detail-edit/{id} [get]
func GetTreatmentDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	detail, err := repo.GetTreatmentDetail(c.Request.Context(), id)
	respondRow(c, detail, err, "Treatment detail not found")
}

// CreateTreatmentDetail godoc
// @Summary      Create a treatment detail
// @Tags         TreatmentDetail
// @Accept       json
// @Produce      json
// @Param        request body model.TreatmentDetailRequest true "Treatment detail"
// @Success      200 {object} map[string]interface{} "message and treatmentDetailID"
// @Failure      400 {object} util.ErrorResponse "Invalid request body"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /treatment-detail [post]
func CreateTreatmentDetail(c *gin.Context) {
	var req model.TreatmentDetailRequest
	if !bindRequest(c, &req) {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	id, err := repo.CreateTreatmentDetail(c.Request.Context(), req.TreatmentDetail())
	respondCreated(c, "Treatment detail added successfully", "treatmentDetailID", id, err)
}

// UpdateTreatmentDetail godoc
// @Summary      Update a treatment detail
// @Tags         TreatmentDetail
// @Accept       json
// @Produce      json
// @Param        id path int true "Treatment detail ID"
// @Param        request body model.TreatmentDetailRequest true "Treatment detail"
// @Success      200 {object} ChangesResponse
// @Failure      400 {object} util.ErrorResponse "Invalid request"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /treatment_detail/{id} [put]
func UpdateTreatmentDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req model.TreatmentDetailRequest
	if !bindRequest(c, &req) {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	changes, err := repo.UpdateTreatmentDetail(c.Request.Context(), id, req.TreatmentDetail())
	respondChanged(c, "Treatment detail updated successfully", changes, err)
}

// DeleteTreatmentDetail godoc
// @Summary      Delete a treatment detail
// @Tags         TreatmentDetail
// @Produce      json
// @Param        id path int true "Treatment detail ID"
// @Success      200 {object} util.MessageResponse
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /treatment-detail/{id} [delete]
func DeleteTreatmentDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	err := repo.DeleteTreatmentDetail(c.Request.Context(), id)
	respondDeleted(c, "Treatment detail deleted successfully", err)
}
