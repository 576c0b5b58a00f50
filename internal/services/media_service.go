package services

import (
	"context"

	"github.com/karolisstonys/PROJECT-CA23/internal/auth"
	"github.com/karolisstonys/PROJECT-CA23/internal/logger"
	"github.com/karolisstonys/PROJECT-CA23/internal/models"
	"github.com/karolisstonys/PROJECT-CA23/internal/omdb"
	"github.com/karolisstonys/PROJECT-CA23/internal/repositories"
	"github.com/karolisstonys/PROJECT-CA23/internal/services/dto"
	"github.com/karolisstonys/PROJECT-CA23/pkg/apperrors"
)

type MediaService interface {
	GetMedia(ctx context.Context, mediaID int) (*models.Media, error)
	GetAllMedias(ctx context.Context, caller auth.Identity) ([]models.Media, error)
	GetMediasByGenre(ctx context.Context, genreID int) ([]models.Media, error)
	GetAllGenres(ctx context.Context) ([]models.Genre, error)
	AddMedia(ctx context.Context, caller auth.Identity, req *dto.MediaRequest) (*models.Media, error)
	ImportMedia(ctx context.Context, caller auth.Identity, req *dto.ImportMediaRequest) (*models.Media, error)
	DeleteMedia(ctx context.Context, caller auth.Identity, mediaID int) error
}

type mediaService struct {
	mediaRepo  repositories.MediaRepository
	genreRepo  repositories.GenreRepository
	omdbClient omdb.Client
}

func NewMediaService(mediaRepo repositories.MediaRepository, genreRepo repositories.GenreRepository, omdbClient omdb.Client) MediaService {
	return &mediaService{
		mediaRepo:  mediaRepo,
		genreRepo:  genreRepo,
		omdbClient: omdbClient,
	}
}

// GetMedia is catalog reference data readable by any authenticated caller;
// no ownership applies.
func (s *mediaService) GetMedia(ctx context.Context, mediaID int) (*models.Media, error) {
	media, err := s.mediaRepo.FindByID(ctx, mediaID, "Genres")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if media == nil {
		return nil, apperrors.NewNotFoundError("media", "MediaId not found")
	}
	return media, nil
}

func (s *mediaService) GetAllMedias(ctx context.Context, caller auth.Identity) ([]models.Media, error) {
	if err := auth.AuthorizeAdmin(caller); err != nil {
		return nil, err
	}

	medias, err := s.mediaRepo.GetAll(ctx, repositories.All(), "Genres")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return medias, nil
}

func (s *mediaService) GetMediasByGenre(ctx context.Context, genreID int) ([]models.Media, error) {
	medias, err := s.mediaRepo.FindAllByGenre(ctx, genreID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return medias, nil
}

func (s *mediaService) GetAllGenres(ctx context.Context) ([]models.Genre, error) {
	genres, err := s.genreRepo.GetAll(ctx, repositories.All())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return genres, nil
}

func (s *mediaService) AddMedia(ctx context.Context, caller auth.Identity, req *dto.MediaRequest) (*models.Media, error) {
	if err := auth.AuthorizeAdmin(caller); err != nil {
		return nil, err
	}

	media := &models.Media{
		Type:     req.Type,
		Title:    req.Title,
		Year:     req.Year,
		Runtime:  req.Runtime,
		Director: req.Director,
		Writer:   req.Writer,
		Actors:   req.Actors,
		Plot:     req.Plot,
		Language: req.Language,
		Country:  req.Country,
		Poster:   req.Poster,
		ImdbID:   req.ImdbID,
	}
	return s.createWithGenres(ctx, media, req.Genres)
}

// ImportMedia fetches title data from OMDb and stores it as catalog media,
// resolving genre names to rows on the way.
func (s *mediaService) ImportMedia(ctx context.Context, caller auth.Identity, req *dto.ImportMediaRequest) (*models.Media, error) {
	if err := auth.AuthorizeAdmin(caller); err != nil {
		return nil, err
	}

	media, genreNames, err := s.omdbClient.FetchByImdbID(ctx, req.ImdbID)
	if err != nil {
		if apperrors.Is(err, omdb.ErrTitleNotFound) {
			return nil, apperrors.NewNotFoundError("media", "Title not found on OMDb")
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "media imported from omdb", "imdb_id", req.ImdbID, "title", media.Title)
	return s.createWithGenres(ctx, media, genreNames)
}

func (s *mediaService) createWithGenres(ctx context.Context, media *models.Media, genreNames []string) (*models.Media, error) {
	for _, name := range genreNames {
		genre, err := s.genreRepo.FindOrCreate(ctx, name)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		media.Genres = append(media.Genres, *genre)
	}

	if err := s.mediaRepo.Create(ctx, media); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return media, nil
}

func (s *mediaService) DeleteMedia(ctx context.Context, caller auth.Identity, mediaID int) error {
	if err := auth.AuthorizeAdmin(caller); err != nil {
		return err
	}

	media, err := s.mediaRepo.FindByID(ctx, mediaID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if media == nil {
		return apperrors.NewNotFoundError("media", "MediaId not found")
	}

	if err := s.mediaRepo.RemoveCascade(ctx, media); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "media deleted", "media_id", mediaID)
	return nil
}
