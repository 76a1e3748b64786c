package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/go-resty/resty/v2"
)

type httpCatalogAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPCatalogAdapter returns the resty implementation of [CatalogAdapter].
// The catalog URL is normalised first; a bare host gets an http:// scheme.
func NewHTTPCatalogAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (CatalogAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.CatalogURL)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog url: %w", err)
	}

	return &httpCatalogAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpCatalogAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpCatalogAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	return h.request(ctx).SetAuthToken(strings.TrimSpace(token))
}

// Login implements [CatalogAdapter].
func (h *httpCatalogAdapter) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/auth/login")
	if err != nil {
		return models.LoginResponse{}, transportError("login", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var out models.LoginResponse
	if err = decode(resp, &out); err != nil {
		return models.LoginResponse{}, err
	}

	return out, nil
}

// Me implements [CatalogAdapter].
func (h *httpCatalogAdapter) Me(ctx context.Context, token string) (models.User, error) {
	resp, err := h.authedRequest(ctx, token).Get("/auth/me")
	if err != nil {
		return models.User{}, transportError("me", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decode(resp, &user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListRecipes implements [CatalogAdapter].
func (h *httpCatalogAdapter) ListRecipes(ctx context.Context, query models.RecipeQuery) (models.RecipesPage, error) {
	return h.getPage(ctx, "/recipes", "list recipes", query)
}

// SearchRecipes implements [CatalogAdapter].
func (h *httpCatalogAdapter) SearchRecipes(ctx context.Context, query models.RecipeQuery) (models.RecipesPage, error) {
	return h.getPage(ctx, "/recipes/search", "search recipes", query)
}

func (h *httpCatalogAdapter) getPage(ctx context.Context, path, op string, query models.RecipeQuery) (models.RecipesPage, error) {
	h.logger.Debug().
		Str("func", "httpCatalogAdapter.getPage").
		Str("path", path).
		Interface("params", query.Params()).
		Msg("requesting recipes page")

	resp, err := h.request(ctx).
		SetQueryParams(query.Params()).
		Get(path)
	if err != nil {
		return models.RecipesPage{}, transportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RecipesPage{}, err
	}

	var page models.RecipesPage
	if err = decode(resp, &page); err != nil {
		return models.RecipesPage{}, err
	}
	if page.Recipes == nil {
		page.Recipes = []models.Recipe{}
	}

	return page, nil
}

// GetRecipe implements [CatalogAdapter].
func (h *httpCatalogAdapter) GetRecipe(ctx context.Context, id int64) (models.Recipe, error) {
	resp, err := h.request(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Get("/recipes/{id}")
	if err != nil {
		return models.Recipe{}, transportError("get recipe", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	var recipe models.Recipe
	if err = decode(resp, &recipe); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// CreateRecipe implements [CatalogAdapter].
func (h *httpCatalogAdapter) CreateRecipe(ctx context.Context, token string, fields models.RecipeFields) (models.Recipe, error) {
	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetBody(fields).
		Post("/recipes/add")
	if err != nil {
		return models.Recipe{}, transportError("create recipe", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	var recipe models.Recipe
	if err = decode(resp, &recipe); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// UpdateRecipe implements [CatalogAdapter].
func (h *httpCatalogAdapter) UpdateRecipe(ctx context.Context, token string, id int64, update models.RecipeUpdate) (models.Recipe, error) {
	resp, err := h.authedRequest(ctx, token).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(update).
		Put("/recipes/{id}")
	if err != nil {
		return models.Recipe{}, transportError("update recipe", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Recipe{}, err
	}

	var recipe models.Recipe
	if err = decode(resp, &recipe); err != nil {
		return models.Recipe{}, err
	}

	return recipe, nil
}

// DeleteRecipe implements [CatalogAdapter].
func (h *httpCatalogAdapter) DeleteRecipe(ctx context.Context, token string, id int64) (models.DeleteResult, error) {
	resp, err := h.authedRequest(ctx, token).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/recipes/{id}")
	if err != nil {
		return models.DeleteResult{}, transportError("delete recipe", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeleteResult{}, err
	}

	var result models.DeleteResult
	if err = decode(resp, &result); err != nil {
		return models.DeleteResult{}, err
	}

	return result, nil
}

func decode(resp *resty.Response, out any) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}
