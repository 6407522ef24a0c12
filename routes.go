package main

import (
	"corpora/controllers"

	"github.com/gin-gonic/gin"
)

type Router struct {
	healthController  *controllers.HealthController
	corporaController *controllers.CorporaController
}

func (r Router) RegisterRoutes(router gin.IRouter) {
	router.GET("/health", r.healthController.Status)

	router.GET("/corpora", r.corporaController.GetCorpora)
	router.GET("/corpora/:name", r.corporaController.GetCorpus)
	router.DELETE("/corpora/:name/documents/:externalID", r.corporaController.DeleteDocument)
}
