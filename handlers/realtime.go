package handlers

import (
	"net/http"

	"justnest/models"
	"justnest/services/notification"
	"justnest/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RealtimeHandler upgrades clients to the websocket event stream.
type RealtimeHandler struct {
	hub *notification.Hub
}

func NewRealtimeHandler(hub *notification.Hub) *RealtimeHandler {
	return &RealtimeHandler{hub: hub}
}

// StreamHandler handles GET /realtime?language=hi&role=lawyer&issue=<id>.
func (h *RealtimeHandler) StreamHandler(c *gin.Context) {
	rooms := roomsFor(c)
	if len(rooms) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Join at least one room with language, role=lawyer or issue")
		return
	}
	if err := h.hub.ServeWS(c.Writer, c.Request, rooms); err != nil {
		// The upgrader has already written the error response.
		getLogger(c).Debug("Realtime upgrade failed", zap.Error(err))
	}
}

func roomsFor(c *gin.Context) []string {
	var rooms []string
	if lang := c.Query("language"); lang != "" {
		rooms = append(rooms, models.LanguageRoom(lang))
	}
	if c.Query("role") == models.RoleLawyer {
		rooms = append(rooms, models.RoomLawyers)
	}
	for _, id := range c.QueryArray("issue") {
		if id != "" {
			rooms = append(rooms, models.IssueRoom(id))
		}
	}
	return rooms
}
