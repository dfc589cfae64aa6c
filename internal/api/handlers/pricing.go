package handlers

import (
	"net/http"

	"pricing-simulator/internal/api/models"
	"pricing-simulator/internal/model"
	"pricing-simulator/internal/pricing"

	"github.com/gin-gonic/gin"
)

const (
	defaultMinMargin = 0.10
	defaultMaxChange = 0.20
)

// PricingHandler exposes the estimator, simulator and optimizer.
type PricingHandler struct {
	registry *SessionRegistry
}

func NewPricingHandler(registry *SessionRegistry) *PricingHandler {
	return &PricingHandler{registry: registry}
}

// ComputeElasticities handles POST /api/v1/elasticities
func (h *PricingHandler) ComputeElasticities(c *gin.Context) {
	var req models.ElasticitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondBadRequest(c, err)
		return
	}

	sess, err := h.registry.Get(req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	results, err := sess.ComputeElasticities()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ElasticitiesResponse{Elasticities: toElasticityDTOs(results)})
}

// ListProducts handles GET /api/v1/products
func (h *PricingHandler) ListProducts(c *gin.Context) {
	sess, err := h.registry.Get(c.Query("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	products := sess.Products()
	out := make([]models.ProductInfo, 0, len(products))
	for _, p := range products {
		info := models.ProductInfo{
			ProductID:    p.ProductID,
			ProductName:  p.ProductName,
			Category:     p.Category,
			BaseCost:     p.BaseCost,
			CurrentPrice: p.CurrentPrice,
		}
		if r, ok := sess.Elasticity(p.ProductID); ok {
			info.Elasticity = &r.Elasticity
			info.RSquared = &r.RSquared
			info.IsModeled = &r.IsModeled
		}
		out = append(out, info)
	}

	c.JSON(http.StatusOK, gin.H{"products": out})
}

// Simulate handles POST /api/v1/simulate
func (h *PricingHandler) Simulate(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	sess, err := h.registry.Get(req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	rows, err := sess.Simulate(req.PriceChanges)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SimulationResponse{Results: convertRows(rows)})
}

// Optimize handles POST /api/v1/optimize
func (h *PricingHandler) Optimize(c *gin.Context) {
	var req models.OptimizationRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondBadRequest(c, err)
		return
	}

	objective, err := pricing.ParseObjective(req.Objective)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	minMargin := defaultMinMargin
	if req.MinMargin != nil {
		minMargin = *req.MinMargin
	}
	maxChange := defaultMaxChange
	if req.MaxChange != nil {
		maxChange = *req.MaxChange
	}

	sess, err := h.registry.Get(req.SessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	recommendations, err := sess.Optimize(objective, minMargin, maxChange)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.OptimizationResponse{
		Objective:       string(objective),
		MinMargin:       minMargin,
		MaxChange:       maxChange,
		Recommendations: recommendations,
	})
}

func toElasticityDTOs(results map[string]model.ElasticityResult) map[string]models.ElasticityResult {
	out := make(map[string]models.ElasticityResult, len(results))
	for id, r := range results {
		out[id] = models.ElasticityResult{
			ProductID:  r.ProductID,
			Elasticity: r.Elasticity,
			RSquared:   r.RSquared,
			IsModeled:  r.IsModeled,
		}
	}
	return out
}

func convertRows(rows []pricing.SimulationRow) []models.SimulationRow {
	out := make([]models.SimulationRow, len(rows))
	for i, r := range rows {
		out[i] = models.SimulationRow{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Category:    r.Category,

			OldPrice:       r.OldPrice,
			NewPrice:       r.NewPrice,
			PriceChangePct: r.PriceChangePct,

			Elasticity: r.Elasticity,

			OldVolume:       r.OldVolume,
			NewVolume:       r.NewVolume,
			VolumeChangePct: r.VolumeChangePct,

			OldRevenue:       r.OldRevenue,
			NewRevenue:       r.NewRevenue,
			RevenueChangePct: r.RevenueChangePct,

			OldProfit:       r.OldProfit,
			NewProfit:       r.NewProfit,
			ProfitChangePct: r.ProfitChangePct,
		}
	}
	return out
}
