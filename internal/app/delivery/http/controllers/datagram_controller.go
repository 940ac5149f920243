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

type DatagramController struct {
	Log             *zap.Logger
	DatagramUsecase contracts.DatagramUsecase
	InternalConfig  *config.InternalConfig
}

var (
	datagramControllerInstance *DatagramController
	onceDatagramController     sync.Once
)

func NewDatagramController(logger *zap.Logger, datagramUsecase contracts.DatagramUsecase, internalConfig *config.InternalConfig) *DatagramController {
	onceDatagramController.Do(func() {
		datagramControllerInstance = &DatagramController{
			Log:             logger,
			DatagramUsecase: datagramUsecase,
			InternalConfig:  internalConfig,
		}
	})
	return datagramControllerInstance
}

func (ctrl *DatagramController) ListDatagrams(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("DatagramController.ListDatagrams called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	createdAfter := r.URL.Query().Get("createdAfter")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.DatagramUsecase.ListDatagrams(ctx, createdAfter)
	if err != nil {
		ctrl.Log.Error("DatagramController.ListDatagrams error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DatagramController.ListDatagrams succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("count", len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDatagramsSuccessMessage, result)
}
