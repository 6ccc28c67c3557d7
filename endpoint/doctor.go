package endpoint

import (
	"github.com/ariebrainware/inet-clinic/model"
	"github.com/gin-gonic/gin"
)

// GetDoctor godoc
// @Summary      Get a doctor
// @Description  Fetch a single doctor row for editing
// @Tags         Doctor
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      200 {object} model.Doctor
// @Failure      400 {object} util.ErrorResponse "Invalid id"
// @Failure      404 {object} util.MessageResponse "Doctor not found"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /doctor-edit/{id} [get]
func GetDoctor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	doctor, err := repo.GetDoctor(c.Request.Context(), id)
	respondRow(c, doctor, err, "Doctor not found")
}

// CreateDoctor godoc
// @Summary      Create a doctor
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        request body model.DoctorRequest true "Doctor"
// @Success      200 {object} map[string]interface{} "message and doctorID"
// @Failure      400 {object} util.ErrorResponse "Invalid request body"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /doctor [post]
func CreateDoctor(c *gin.Context) {
	var req model.DoctorRequest
	if !bindRequest(c, &req) {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	id, err := repo.CreateDoctor(c.Request.Context(), req.Doctor())
	respondCreated(c, "Doctor added successfully", "doctorID", id, err)
}

// UpdateDoctor godoc
// @Summary      Update a doctor
// @Description  Replaces every column of the doctor. An unknown id reports zero changes.
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Param        request body model.DoctorRequest true "Doctor"
// @Success      200 {object} ChangesResponse
// @Failure      400 {object} util.ErrorResponse "Invalid request"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /doctor/{id} [put]
func UpdateDoctor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req model.DoctorRequest
	if !bindRequest(c, &req) {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	changes, err := repo.UpdateDoctor(c.Request.Context(), id, req.Doctor())
	respondChanged(c, "Doctor updated successfully", changes, err)
}

// DeleteDoctor godoc
// @Summary      Delete a doctor
// @Description  Removes the doctor together with its treatments and their details
// @Tags         Doctor
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      200 {object} util.MessageResponse
// @Failure      400 {object} util.ErrorResponse "Invalid id"
// @Failure      500 {object} util.ErrorResponse "Server error"
// @Router       /doctor/{id} [delete]
func DeleteDoctor(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	repo, ok := repositoryFrom(c)
	if !ok {
		return
	}
	err := repo.DeleteDoctor(c.Request.Context(), id)
	respondDeleted(c, "Doctor deleted successfully", err)
}
