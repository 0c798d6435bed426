package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/handler/dto"
	apperrors "github.com/lurssed-daniel/Udacity-Project-II-Trivia-API/internal/pkg/errors"
)

// respondWithError переводит ошибку уровня сервиса в один из трех кодов
// таксономии API. Детали ошибки попадают только в лог вместе с request id,
// клиент получает фиксированное тело.
func respondWithError(c *gin.Context, err error) {
	status := http.StatusUnprocessableEntity
	if errors.Is(err, apperrors.ErrNotFound) {
		status = http.StatusNotFound
	} else if errors.Is(err, apperrors.ErrBadRequest) {
		status = http.StatusBadRequest
	}

	log.Printf("[API] request_id=%s status=%d: %v", c.GetString("request_id"), status, err)
	c.JSON(status, dto.NewErrorResponse(status))
}
