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

type TestResultController struct {
	Log               *zap.Logger
	TestResultUsecase contracts.TestResultUsecase
	InternalConfig    *config.InternalConfig
}

var (
	testResultControllerInstance *TestResultController
	onceTestResultController     sync.Once
)

func NewTestResultController(logger *zap.Logger, testResultUsecase contracts.TestResultUsecase, internalConfig *config.InternalConfig) *TestResultController {
	onceTestResultController.Do(func() {
		testResultControllerInstance = &TestResultController{
			Log:               logger,
			TestResultUsecase: testResultUsecase,
			InternalConfig:    internalConfig,
		}
	})
	return testResultControllerInstance
}

func (ctrl *TestResultController) PublishTestResult(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("TestResultController.PublishTestResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.TestResult{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.TestResultUsecase.PublishTestResult(ctx, request)
	if err != nil {
		ctrl.Log.Error("TestResultController.PublishTestResult error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("TestResultController.PublishTestResult succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVialIDKey, result.VialID),
		zap.String(constvars.LoggingRouteKey, result.Route),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TestResultReceivedMessage, result)
}
