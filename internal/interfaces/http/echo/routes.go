package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(server *e.Echo, importHandler *ImportHandler, runHandler *RunHandler, leadHandler *LeadHandler) {
	server.POST("/api/v1/imports/leads", importHandler.ImportLeads)
	server.GET("/api/v1/imports/leads/:id", runHandler.GetImportRun)
	server.GET("/api/v1/leads/:username", leadHandler.GetLeadByUsername)
}
