package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cvidalr/sushi-mostrador/models"
	"github.com/cvidalr/sushi-mostrador/utils"
)

type PromoController struct {
	DB *gorm.DB
}

func NewPromoController(db *gorm.DB) *PromoController {
	return &PromoController{DB: db}
}

// GetAllPromos -> GET /api/promos
// Array pelado, ordenado por numero de promo.
func (pc *PromoController) GetAllPromos(c *gin.Context) {
	var promos []models.Promo
	if err := pc.DB.Order("promo_nro asc").Find(&promos).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, promos)
}
