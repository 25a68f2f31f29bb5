package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	billingHTTP "jishu-admin/internal/billing/delivery/http"
	billingRepo "jishu-admin/internal/billing/repository/jishuapi"
	billingUC "jishu-admin/internal/billing/usecase"
	catalogHTTP "jishu-admin/internal/catalog/delivery/http"
	catalogRepo "jishu-admin/internal/catalog/repository/jishuapi"
	catalogUC "jishu-admin/internal/catalog/usecase"
	contentHTTP "jishu-admin/internal/content/delivery/http"
	contentRepo "jishu-admin/internal/content/repository/jishuapi"
	contentUC "jishu-admin/internal/content/usecase"
	"jishu-admin/internal/middleware"
	"jishu-admin/internal/resource"
	userHTTP "jishu-admin/internal/user/delivery/http"
	userRepo "jishu-admin/internal/user/repository/jishuapi"
	userUC "jishu-admin/internal/user/usecase"
)

func (srv *HTTPServer) resourceOptions() resource.Options {
	return resource.Options{
		StepBackOnEmptyPage: srv.cfg.Resource.StepBackOnEmptyPage,
		ReloadAfterCreate:   srv.cfg.Resource.ReloadAfterCreate,
		CacheSize:           srv.cfg.Resource.CacheSize,
		CacheTTL:            srv.cfg.Resource.CacheTTL,
	}
}

// Pattern for each domain:
//  1. Repository over the upstream client
//  2. UseCase with resource manager options
//  3. HTTP handler
//  4. Routes under /api/v1
func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := userRepo.New(srv.jishuClient, srv.l)
	uc := userUC.New(repo, srv.resourceOptions(), srv.l)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
}

func (srv *HTTPServer) setupCatalogDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := catalogRepo.New(srv.jishuClient, srv.l)
	uc := catalogUC.New(repo, srv.resourceOptions(), srv.l)
	h := catalogHTTP.New(srv.l, uc)
	catalogHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Catalog domain registered")
}

func (srv *HTTPServer) setupContentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := contentRepo.New(srv.jishuClient, srv.l)
	uc := contentUC.New(repo, srv.resourceOptions(), srv.l)
	h := contentHTTP.New(srv.l, uc)
	contentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Content domain registered")
}

func (srv *HTTPServer) setupBillingDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := billingRepo.New(srv.jishuClient, srv.l)
	uc := billingUC.New(repo, srv.resourceOptions(), srv.l)
	h := billingHTTP.New(srv.l, uc)
	billingHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Billing domain registered")
}
