package doctors

import (
	"context"
	"net/http"
	"pandacare-gateway/internal/app/config"
	"pandacare-gateway/internal/app/contracts"
	"pandacare-gateway/internal/pkg/constvars"
	"pandacare-gateway/internal/pkg/utils"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Client         contracts.DoctorClient
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	doctorControllerInstance *DoctorController
	onceDoctorController     sync.Once
)

func NewDoctorController(client contracts.DoctorClient, internalConfig *config.InternalConfig, logger *zap.Logger) *DoctorController {
	onceDoctorController.Do(func() {
		doctorControllerInstance = &DoctorController{
			Client:         client,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return doctorControllerInstance
}

func (ctrl *DoctorController) withTimeout(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), time.Duration(ctrl.InternalConfig.App.RequestTimeoutInSecond)*time.Second)
}

func (ctrl *DoctorController) Search(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	query := &contracts.DoctorSearchQuery{
		Name:       r.URL.Query().Get("name"),
		Speciality: r.URL.Query().Get("speciality"),
		WorkingDay: r.URL.Query().Get("workingDay"),
	}

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	doctors, err := ctrl.Client.SearchDoctors(ctx, token, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorListSuccess, doctors)
}

func (ctrl *DoctorController) Detail(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := ctrl.withTimeout(r)
	defer cancel()

	token, _ := ctx.Value(constvars.CONTEXT_TOKEN_KEY).(string)
	doctorID := chi.URLParam(r, "doctorID")
	doctor, err := ctrl.Client.FindDoctorByID(ctx, token, doctorID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DoctorProfileSuccess, doctor)
}
