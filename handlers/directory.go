// File: clinicore/handlers/directory.go
package handlers

import (
	"net/http"

	clinicRepoPkg "clinicore/database/repository/clinic"
	patientRepoPkg "clinicore/database/repository/patient"
	physicianRepoPkg "clinicore/database/repository/physician"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves the thin listing endpoints used to discover clinic,
// physician and patient IDs for scheduling.
type DirectoryHandler struct {
	ClinicRepo    clinicRepoPkg.ClinicRepository
	PhysicianRepo physicianRepoPkg.PhysicianRepository
	PatientRepo   patientRepoPkg.PatientRepository
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(cr clinicRepoPkg.ClinicRepository, phr physicianRepoPkg.PhysicianRepository, par patientRepoPkg.PatientRepository) *DirectoryHandler {
	return &DirectoryHandler{
		ClinicRepo:    cr,
		PhysicianRepo: phr,
		PatientRepo:   par,
	}
}

// GetAllClinicsHandler returns all clinics.
func (dh *DirectoryHandler) GetAllClinicsHandler(c *gin.Context) {
	clinics, err := dh.ClinicRepo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch clinics", err.Error())
		return
	}
	c.JSON(http.StatusOK, clinics)
}

// GetAllPhysiciansHandler returns all physicians.
func (dh *DirectoryHandler) GetAllPhysiciansHandler(c *gin.Context) {
	physicians, err := dh.PhysicianRepo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch physicians", err.Error())
		return
	}
	c.JSON(http.StatusOK, physicians)
}

// GetAllPatientsHandler returns all patients.
func (dh *DirectoryHandler) GetAllPatientsHandler(c *gin.Context) {
	patients, err := dh.PatientRepo.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch patients", err.Error())
		return
	}
	c.JSON(http.StatusOK, patients)
}
