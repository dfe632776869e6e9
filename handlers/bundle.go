// File: clinicore/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Appointment recommendation endpoint.
	RecommendSlots gin.HandlerFunc

	// Directory listing endpoints.
	GetAllClinicsHandler    gin.HandlerFunc
	GetAllPhysiciansHandler gin.HandlerFunc
	GetAllPatientsHandler   gin.HandlerFunc
}
