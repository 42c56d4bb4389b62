package main

import (
	"context"
	"html/template"
	"net/http"
	"strings"

	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/stevenson0/Insta-clone/api"
	"github.com/stevenson0/Insta-clone/constants"
	docs "github.com/stevenson0/Insta-clone/doclib"
	"github.com/stevenson0/Insta-clone/routes/interactions"
	"github.com/stevenson0/Insta-clone/routes/meta"
	"github.com/stevenson0/Insta-clone/routes/preferences"
	"github.com/stevenson0/Insta-clone/routes/views"
	"github.com/stevenson0/Insta-clone/state"
	"github.com/stevenson0/Insta-clone/types"
	"github.com/stevenson0/Insta-clone/uapi"

	"github.com/cloudflare/tableflip"

	"github.com/infinitybotlist/eureka/jsonimpl"
	"github.com/infinitybotlist/eureka/zapchi"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	_ "embed"
)

//go:embed data/docs.html
var docsHTML string

var openapi []byte

// Simple middleware to handle CORS
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// limit body to 1mb
		r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Retry-After")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE")

		if r.Method == "OPTIONS" {
			w.Write([]byte{})
			return
		}

		w.Header().Set("Content-Type", "application/json")

		next.ServeHTTP(w, r)
	})
}

// Ratelimit Middleware
//
// Only requests that start content generation are limited, every mount or
// retarget fans out to several model calls.
type RateLimiterMiddleware struct {
	limiter *rate.Limiter
	methods map[string]struct{}
	prefix  string
	mu      sync.Mutex
}

func NewRateLimiterMiddleware(rateLimit rate.Limit, burst int, prefix string, methods []string) *RateLimiterMiddleware {
	limitedMethods := make(map[string]struct{}, len(methods))
	for _, method := range methods {
		limitedMethods[method] = struct{}{}
	}

	return &RateLimiterMiddleware{
		limiter: rate.NewLimiter(rateLimit, burst),
		methods: limitedMethods,
		prefix:  prefix,
	}
}

func (rl *RateLimiterMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, limited := rl.methods[r.Method]

		if limited && strings.HasPrefix(r.URL.Path, rl.prefix) {
			rl.mu.Lock()
			allow := rl.limiter.Allow()
			rl.mu.Unlock()

			if !allow {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	state.Setup()

	var err error

	docs.DocsSetupData = &docs.SetupData{
		URL:         state.Config.Server.PublicURL,
		ErrorStruct: types.ApiError{},
		Info: docs.Info{
			Title:       "Insta-clone",
			Version:     "1.0",
			Description: "Screen state for a social media front-end whose feed, profiles, chats and videos are generated by Gemini.",
			Contact: docs.Contact{
				Name: "Insta-clone",
				URL:  "https://github.com/stevenson0/Insta-clone",
			},
			License: docs.License{
				Name: "MIT",
				URL:  "https://opensource.org/licenses/MIT",
			},
		},
	}

	docs.Setup()
	api.Setup()

	ctx, cancel := context.WithCancel(state.Context)
	defer cancel()

	state.Screens.Start(ctx, constants.SweepInterval)
	defer state.Shutdown()

	r := chi.NewRouter()

	ratelimit := NewRateLimiterMiddleware(rate.Every(time.Second/5), 10, "/screens", []string{http.MethodPost, http.MethodPatch})

	r.Use(
		middleware.Recoverer,
		middleware.RealIP,
		middleware.CleanPath,
		middleware.Heartbeat("/ping"),
		middleware.Compress(5),
		middleware.Timeout(2*time.Minute),
		corsMiddleware,
		ratelimit.Middleware,
		zapchi.Logger(state.Logger, "api"),
	)

	routers := []uapi.APIRouter{
		views.Router{},
		interactions.Router{},
		preferences.Router{},
		meta.Router{},
	}

	for _, router := range routers {
		name, desc := router.Tag()
		if name != "" {
			docs.AddTag(name, desc)
			uapi.State.SetCurrentTag(name)
		} else {
			panic("Router tag name cannot be empty")
		}

		router.Routes(r)
	}

	r.Get("/openapi", func(w http.ResponseWriter, r *http.Request) {
		w.Write(openapi)
	})

	docsTempl := template.Must(template.New("docs").Parse(docsHTML))

	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")

		docsTempl.Execute(w, map[string]string{
			"url": "/openapi",
		})
	})

	// Load openapi here to avoid large marshalling in every request
	openapi, err = jsonimpl.Marshal(docs.GetSchema())

	if err != nil {
		panic(err)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(constants.EndpointNotFound))
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(constants.MethodNotAllowed))
	})

	// If GOOS is windows, do normal http server
	if runtime.GOOS == "linux" || runtime.GOOS == "darwin" {
		upg, _ := tableflip.New(tableflip.Options{})
		defer upg.Stop()

		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGHUP)
			for range sig {
				state.Logger.Info("Received SIGHUP, upgrading server")
				upg.Upgrade()
			}
		}()

		// Listen must be called before Ready
		ln, err := upg.Listen("tcp", state.Config.Server.Port)

		if err != nil {
			state.Logger.Fatal("Error binding to socket", zap.Error(err))
		}

		defer ln.Close()

		server := http.Server{
			ReadTimeout: 30 * time.Second,
			Handler:     r,
		}

		go func() {
			err := server.Serve(ln)
			if err != http.ErrServerClosed {
				state.Logger.Error("Server failed due to unexpected error", zap.Error(err))
			}
		}()

		if err := upg.Ready(); err != nil {
			state.Logger.Fatal("Error calling upg.Ready", zap.Error(err))
		}

		state.Logger.Info("Serving", zap.String("port", state.Config.Server.Port), zap.String("env", state.Config.Server.Env))

		<-upg.Exit()

		shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
		defer stop()

		if err := server.Shutdown(shutdownCtx); err != nil {
			state.Logger.Error("Server did not shut down cleanly", zap.Error(err))
		}
	} else {
		// Tableflip not supported
		state.Logger.Warn("Tableflip not supported on this platform, this is not a production-capable server.")
		err = http.ListenAndServe(state.Config.Server.Port, r)

		if err != nil {
			state.Logger.Fatal("Error binding to socket", zap.Error(err))
		}
	}
}
