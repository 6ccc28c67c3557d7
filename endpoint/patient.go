package endpoint

import (
	"github.com/ariebrainware/inet-clinic/model"
	"github.com/gin-gonic/gin"
)

// GetPatient godoc
// @Summary      Get a patient
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} model.Patient
// @Failure      404 {object} util.MessageResponse "Patient not found"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /patient-edit/{id} [get]
func GetPatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	patient, err := repo.GetPatient(c.Request.Context(), id)
	respondRow(c, patient, err, "Patient not found")
}

// CreatePatient godoc
// @Summary      Create a patient
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        request body model.PatientRequest true "Patient"
// @Success      200 {object} map[string]interface{} "message and patientID"
// @Failure      400 {object} util.ErrorResponse "Invalid request body"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /patient [post]
func CreatePatient(c *gin.Context) {
	var req model.PatientRequest
	if !bindRequest(c, &req) {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	id, err := repo.CreatePatient(c.Request.Context(), req.Patient())
	respondCreated(c, "Patient added successfully", "patientID", id, err)
}

// UpdatePatient godoc
// @Summary      Update a patient
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        id path int true "Patient ID"
// @Param        request body model.PatientRequest true "Patient"
// @Success      200 {object} ChangesResponse
// @Failure      400 {object} util.ErrorResponse "Invalid request"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /patient/{id} [put]
func UpdatePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req model.PatientRequest
	if !bindRequest(c, &req) {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	changes, err := repo.UpdatePatient(c.Request.Context(), id, req.Patient())
	respondChanged(c, "Patient updated successfully", changes, err)
}

// DeletePatient godoc
// @Summary      Delete a patient
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.MessageResponse
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /patient/{id} [delete]
func DeletePatient(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	err := repo.DeletePatient(c.Request.Context(), id)
	respondDeleted(c, "Patient deleted successfully", err)
}
