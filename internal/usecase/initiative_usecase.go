package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kartavyango/sahaaya/internal/domain/apperror"
	"github.com/kartavyango/sahaaya/internal/domain/contract"
	"github.com/kartavyango/sahaaya/internal/domain/entity"
	usecasecontract "github.com/kartavyango/sahaaya/internal/usecase/contract"
)

// InitiativeUsecase handles the media-rich initiative catalog.
type InitiativeUsecase struct {
	iniRepo contract.IInitiativeRepository
	storage contract.IFileStorage
	uuidGen contract.IUUIDGenerator
	logger  usecasecontract.IAppLogger
}

// NewInitiativeUsecase creates a new InitiativeUsecase instance.
func NewInitiativeUsecase(
	iniRepo contract.IInitiativeRepository,
	storage contract.IFileStorage,
	uuidGen contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *InitiativeUsecase {
	return &InitiativeUsecase{
		iniRepo: iniRepo,
		storage: storage,
		uuidGen: uuidGen,
		logger:  logger,
	}
}

// check if InitiativeUsecase implements IInitiativeUseCase
var _ usecasecontract.IInitiativeUseCase = (*InitiativeUsecase)(nil)

// CreateInitiative stores the initiative's media and persists the record.
func (uc *InitiativeUsecase) CreateInitiative(ctx context.Context, creator *entity.User, in usecasecontract.CreateInitiativeInput) (*entity.Initiative, error) {
	ve := apperror.NewValidation()
	if !in.Category.Valid() {
		ve.Add("category", fmt.Sprintf("must be one of %s, %s, %s, %s",
			entity.InitiativeCategoryRehabilitation, entity.InitiativeCategoryOutreach,
			entity.InitiativeCategoryEducation, entity.InitiativeCategoryPolicy))
	}
	if strings.TrimSpace(in.Title) == "" {
		ve.Add("title", "title is required")
	}
	if err := ve.ErrOrNil(); err != nil {
		return nil, err
	}

	media := entity.InitiativeMedia{}
	var err error
	if media.Images, err = uc.storeAll(ctx, in.Images); err != nil {
		return nil, err
	}
	if media.Videos, err = uc.storeAll(ctx, in.Videos); err != nil {
		return nil, err
	}
	if media.Documents, err = uc.storeAll(ctx, in.Documents); err != nil {
		return nil, err
	}
	if media.Audio, err = uc.storeAll(ctx, in.Audio); err != nil {
		return nil, err
	}

	now := time.Now()
	ini := &entity.Initiative{
		ID:          uc.uuidGen.NewUUID(),
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Title:       in.Title,
		Description: in.Description,
		Content:     in.Content,
		Media:       media,
		ListItems:   in.ListItems,
		CreatedBy:   creator.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.iniRepo.CreateInitiative(ctx, ini); err != nil {
		uc.logger.Errorf("failed to create initiative: %v", err)
		uc.releaseMedia(ctx, ini)
		return nil, fmt.Errorf("failed to create initiative")
	}
	return ini, nil
}

// GetInitiativeByID retrieves a single initiative.
func (uc *InitiativeUsecase) GetInitiativeByID(ctx context.Context, id string) (*entity.Initiative, error) {
	return uc.iniRepo.GetInitiativeByID(ctx, id)
}

// GetInitiatives returns one page of initiatives, optionally filtered by
// category, plus the total matching count.
func (uc *InitiativeUsecase) GetInitiatives(ctx context.Context, category *entity.InitiativeCategory, page, limit int64) ([]*entity.Initiative, int64, error) {
	if category != nil && !category.Valid() {
		ve := apperror.NewValidation()
		ve.Add("category", "unknown category")
		return nil, 0, ve
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return uc.iniRepo.GetInitiatives(ctx, &contract.InitiativeFilterOptions{
		Category: category,
		Page:     page,
		Limit:    limit,
	})
}

// UpdateInitiative applies field updates. The repository refreshes the
// updated_at timestamp on every save. Owner or admin only.
func (uc *InitiativeUsecase) UpdateInitiative(ctx context.Context, id string, requester *entity.User, updates map[string]interface{}) (*entity.Initiative, error) {
	ini, err := uc.iniRepo.GetInitiativeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ini.CanModify(requester) {
		return nil, apperror.Forbiddenf("initiative %s may only be modified by its owner or an admin", id)
	}

	if cat, ok := updates["category"].(string); ok && !entity.InitiativeCategory(cat).Valid() {
		ve := apperror.NewValidation()
		ve.Add("category", "unknown category")
		return nil, ve
	}

	if err := uc.iniRepo.UpdateInitiative(ctx, id, updates); err != nil {
		uc.logger.Errorf("failed to update initiative %s: %v", id, err)
		return nil, fmt.Errorf("failed to update initiative")
	}
	return uc.iniRepo.GetInitiativeByID(ctx, id)
}

// DeleteInitiative removes the initiative and releases its media from
// storage. Media delete failures are logged, not retried.
func (uc *InitiativeUsecase) DeleteInitiative(ctx context.Context, id string, requester *entity.User) error {
	ini, err := uc.iniRepo.GetInitiativeByID(ctx, id)
	if err != nil {
		return err
	}
	if !ini.CanModify(requester) {
		return apperror.Forbiddenf("initiative %s may only be deleted by its owner or an admin", id)
	}

	if err := uc.iniRepo.DeleteInitiative(ctx, id); err != nil {
		uc.logger.Errorf("failed to delete initiative %s: %v", id, err)
		return fmt.Errorf("failed to delete initiative")
	}
	uc.releaseMedia(ctx, ini)
	return nil
}

func (uc *InitiativeUsecase) storeAll(ctx context.Context, uploads []usecasecontract.FileUpload) ([]entity.MediaFile, error) {
	files := make([]entity.MediaFile, 0, len(uploads))
	for _, f := range uploads {
		stored, err := uc.storage.Save(ctx, f.FileName, f.Reader)
		if err != nil {
			uc.logger.Errorf("failed to store initiative media %s: %v", f.FileName, err)
			return nil, fmt.Errorf("failed to store initiative media")
		}
		files = append(files, entity.MediaFile{
			FileName: f.FileName,
			Path:     stored.StorageID,
			MimeType: f.MimeType,
			Size:     stored.Size,
		})
	}
	return files, nil
}

func (uc *InitiativeUsecase) releaseMedia(ctx context.Context, ini *entity.Initiative) {
	for _, f := range ini.Media.All() {
		if err := uc.storage.Delete(ctx, f.Path); err != nil {
			uc.logger.Warnf("failed to release stored media %s of initiative %s: %v", f.Path, ini.ID, err)
		}
	}
}
