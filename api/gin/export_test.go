package gin

import "github.com/gin-gonic/gin"

// CreateEngine -
func (ws *webServer) CreateEngine() (*gin.Engine, error) {
	ws.Lock()
	defer ws.Unlock()

	return ws.createEngine()
}
