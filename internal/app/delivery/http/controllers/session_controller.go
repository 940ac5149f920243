package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/pkg/constvars"
	"lisagent-service/internal/pkg/dto/requests"
	"lisagent-service/internal/pkg/exceptions"
	"lisagent-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SessionController struct {
	Log            *zap.Logger
	SessionUsecase contracts.SessionUsecase
	InternalConfig *config.InternalConfig
}

var (
	sessionControllerInstance *SessionController
	onceSessionController     sync.Once
)

func NewSessionController(logger *zap.Logger, sessionUsecase contracts.SessionUsecase, internalConfig *config.InternalConfig) *SessionController {
	onceSessionController.Do(func() {
		sessionControllerInstance = &SessionController{
			Log:            logger,
			SessionUsecase: sessionUsecase,
			InternalConfig: internalConfig,
		}
	})
	return sessionControllerInstance
}

func (ctrl *SessionController) IngestSession(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("SessionController.IngestSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.IngestSession{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	result, err := ctrl.SessionUsecase.IngestSession(ctx, request)
	if err != nil {
		ctrl.Log.Error("SessionController.IngestSession error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SessionController.IngestSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, result.SessionID),
		zap.String(constvars.LoggingRouteKey, result.Route),
		zap.String(constvars.LoggingOutcomeKey, result.Outcome),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionProcessedMessage, result)
}
