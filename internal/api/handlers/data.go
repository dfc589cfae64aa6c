package handlers

import (
	"net/http"

	"pricing-simulator/internal/api/models"
	"pricing-simulator/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DataHandler handles catalog/observation loads and the demo dataset.
type DataHandler struct {
	registry *SessionRegistry
}

func NewDataHandler(registry *SessionRegistry) *DataHandler {
	return &DataHandler{registry: registry}
}

// LoadCatalog handles POST /api/v1/catalog
func (h *DataHandler) LoadCatalog(c *gin.Context) {
	var req models.CatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	sess, err := h.registry.Get(req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := sess.LoadCatalog(req.Products); err != nil {
		respondError(c, err)
		return
	}

	logrus.WithField("rows", len(req.Products)).Info("catalog loaded")
	c.JSON(http.StatusOK, models.LoadResponse{
		Message: "Catalog loaded successfully",
		Rows:    len(req.Products),
	})
}

// LoadObservations handles POST /api/v1/observations
func (h *DataHandler) LoadObservations(c *gin.Context) {
	var req models.ObservationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	sess, err := h.registry.Get(req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := sess.LoadObservations(req.Observations); err != nil {
		respondError(c, err)
		return
	}

	logrus.WithField("rows", len(req.Observations)).Info("observations loaded")
	c.JSON(http.StatusOK, models.LoadResponse{
		Message: "Observations loaded successfully",
		Rows:    len(req.Observations),
	})
}

// GenerateDemo handles POST /api/v1/demo: generate the synthetic dataset,
// load it into the session and compute elasticities in one step.
func (h *DataHandler) GenerateDemo(c *gin.Context) {
	sess, err := h.registry.Get(c.Query("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	demo := data.GenerateDemoData(data.DemoSeed)
	if err := sess.LoadCatalog(demo.Products); err != nil {
		respondError(c, err)
		return
	}
	if err := sess.LoadObservations(demo.History); err != nil {
		respondError(c, err)
		return
	}

	results, err := sess.ComputeElasticities()
	if err != nil {
		respondError(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"products": len(demo.Products),
		"rows":     len(demo.History),
	}).Info("demo data loaded")

	c.JSON(http.StatusOK, models.DemoResponse{
		Message:       "Demo data loaded successfully",
		ProductsCount: len(demo.Products),
		HistoryRows:   len(demo.History),
		Elasticities:  toElasticityDTOs(results),
	})
}
