package ratings

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

type RatingController struct {
	Usecase        contracts.RatingUsecase
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	ratingControllerInstance *RatingController
	onceRatingController     sync.Once
)

func NewRatingController(usecase contracts.RatingUsecase, internalConfig *config.InternalConfig, logger *zap.Logger) *RatingController {
	onceRatingController.Do(func() {
		ratingControllerInstance = &RatingController{
			Usecase:        usecase,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return ratingControllerInstance
}

func (ctrl *RatingController) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond)*time.Second)
}

func (ctrl *RatingController) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	request := new(requests.SubmitRating)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	rating, err := ctrl.Usecase.SubmitRating(ctx, token, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RatingSubmitSuccess, rating)
}

func (ctrl *RatingController) ListByDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	doctorID := chi.URLParam(r, "doctorID")
	ratings, err := ctrl.Usecase.FindDoctorRatings(ctx, token, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RatingListSuccess, ratings)
}

func (ctrl *RatingController) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	ratingID := chi.URLParam(r, "ratingID")
	if err := ctrl.Usecase.DeleteRating(ctx, token, ratingID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, nil)
}
