package staff

import (
	"context"
	"medicenter-service/internal/app/config"
	"medicenter-service/internal/app/contracts"
	"medicenter-service/internal/app/models"
	"medicenter-service/internal/pkg/hospitaldto"
	"medicenter-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	staffUsecaseInstance contracts.StaffUsecase
	onceStaffUsecase     sync.Once
)

type staffUsecase struct {
	StaffHospitalClient contracts.StaffHospitalClient
	Log                 *zap.Logger
	InternalConfig      *config.InternalConfig
}

func NewStaffUsecase(
	staffHospitalClient contracts.StaffHospitalClient,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
) contracts.StaffUsecase {
	onceStaffUsecase.Do(func() {
		instance := &staffUsecase{
			StaffHospitalClient: staffHospitalClient,
			Log:                 logger,
			InternalConfig:      internalConfig,
		}
		staffUsecaseInstance = instance
	})
	return staffUsecaseInstance
}

func (uc *staffUsecase) FindAll(ctx context.Context, session *models.Session) ([]hospitaldto.StaffMember, error) {
	staffMembers, err := uc.StaffHospitalClient.FindAll(ctx, session.AccessToken)
	if err != nil {
		return nil, err
	}

	mediaHost := uc.InternalConfig.Hospital.MediaHost
	for i := range staffMembers {
		if staffMembers[i].Profile == nil {
			continue
		}
		staffMembers[i].Profile.ProfilePix = utils.NormalizeMediaURL(mediaHost, staffMembers[i].Profile.ProfilePix)
	}

	return staffMembers, nil
}
