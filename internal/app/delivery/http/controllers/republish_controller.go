package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"lisagent-service/internal/app/config"
	"lisagent-service/internal/app/contracts"
	"lisagent-service/internal/pkg/constvars"
	"lisagent-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type RepublishController struct {
	Log              *zap.Logger
	RepublishUsecase contracts.RepublishUsecase
	InternalConfig   *config.InternalConfig
}

var (
	republishControllerInstance *RepublishController
	onceRepublishController     sync.Once
)

func NewRepublishController(logger *zap.Logger, republishUsecase contracts.RepublishUsecase, internalConfig *config.InternalConfig) *RepublishController {
	onceRepublishController.Do(func() {
		republishControllerInstance = &RepublishController{
			Log:              logger,
			RepublishUsecase: republishUsecase,
			InternalConfig:   internalConfig,
		}
	})
	return republishControllerInstance
}

// TriggerRepublish runs one on-demand republish pass, synchronously.
func (ctrl *RepublishController) TriggerRepublish(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("RepublishController.TriggerRepublish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()

	result, err := ctrl.RepublishUsecase.Republish(ctx)
	if err != nil {
		ctrl.Log.Error("RepublishController.TriggerRepublish error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("RepublishController.TriggerRepublish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCandidateCountKey, result.Candidates),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RepublishStartedMessage, result)
}
