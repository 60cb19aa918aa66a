package konsultasi

import (
	"context"
	"net/http"
	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/pkg/constvars"
	"pandacare-gateway/internal/pkg/dto/requests"
	"pandacare-gateway/internal/pkg/exceptions"
	"pandacare-gateway/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type KonsultasiController struct {
	Usecase        contracts.KonsultasiUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	konsultasiControllerInstance *KonsultasiController
	onceKonsultasiController     sync.Once
)

func NewKonsultasiController(usecase contracts.KonsultasiUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *KonsultasiController {
	onceKonsultasiController.Do(func() {
		konsultasiControllerInstance = &KonsultasiController{
			Usecase:        usecase,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return konsultasiControllerInstance
}

func (ctrl *KonsultasiController) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond)*time.Second)
}

func (ctrl *KonsultasiController) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	query, err := parseConsultationQuery(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	consultations, err := ctrl.Usecase.FindConsultations(ctx, token, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationListSuccess, consultations)
}

func (ctrl *KonsultasiController) Book(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	request := new(requests.CreateConsultation)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	consultation, err := ctrl.Usecase.BookConsultation(ctx, token, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ConsultationCreatedSuccess, consultation)
}

func (ctrl *KonsultasiController) Reschedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	request := new(requests.RescheduleConsultation)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	consultationID := chi.URLParam(r, "consultationID")
	consultation, err := ctrl.Usecase.RescheduleConsultation(ctx, token, consultationID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationRescheduleSuccess, consultation)
}

func (ctrl *KonsultasiController) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	consultationID := chi.URLParam(r, "consultationID")
	if err := ctrl.Usecase.CancelConsultation(ctx, token, consultationID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultationCancelSuccess, nil)
}

func (ctrl *KonsultasiController) PublishSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	request := new(requests.GenerateSchedule)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	published, err := ctrl.Usecase.PublishSchedule(ctx, token, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SchedulePublishSuccess, published)
}

// parseConsultationQuery reads the optional from/to/status filters off the
// query string. Timestamps are RFC 3339.
func parseConsultationQuery(r *http.Request) (*requests.ConsultationQuery, error) {
	query := new(requests.ConsultationQuery)

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, exceptions.WrapWithError(err, constvars.StatusBadRequest, "from must be an RFC 3339 timestamp", constvars.ErrDevValidationFailed)
		}
		query.From = parsed
	}
	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, exceptions.WrapWithError(err, constvars.StatusBadRequest, "to must be an RFC 3339 timestamp", constvars.ErrDevValidationFailed)
		}
		query.To = parsed
	}
	query.Status = r.URL.Query().Get("status")
	if err := utils.ValidateStruct(query); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return query, nil
}
