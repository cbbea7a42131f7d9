package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"lead-insights-go/internal/aggregator"
	"lead-insights-go/internal/dataset"
	"lead-insights-go/internal/extractor"
	"lead-insights-go/internal/llm"
	"lead-insights-go/internal/logger"
	"lead-insights-go/internal/ranker"
	"lead-insights-go/internal/store"
	"lead-insights-go/internal/types"
)

const maxUploadBytes = 32 << 20

func main() {
	_ = godotenv.Load() // loads .env

	log := logger.New()
	log.WithField("service", "lead-insights-go").Info("starting service")

	llmCfg := llm.Config{
		BaseURL:     os.Getenv("LLM_BASE_URL"),
		APIKey:      os.Getenv("LLM_API_KEY"),
		Model:       os.Getenv("LLM_MODEL"),
		Temperature: 0.1,
		MaxTokens:   500,
	}

	var completer llm.Completer
	if os.Getenv("USE_MOCK_LLM") == "true" {
		log.Info("mock LLM mode ON - returning deterministic insights")
		completer = &llm.Mock{}
	} else {
		completer = llm.NewClient(llmCfg, log)
	}

	st, err := store.New(envOr("DATA_DIR", "data"))
	if err != nil {
		log.WithError(err).Fatal("failed to prepare data directories")
	}

	concurrency, _ := strconv.Atoi(envOr("EXTRACT_CONCURRENCY", "4"))
	ex := extractor.New(completer, log)
	rk := ranker.New(ex, concurrency, log)

	mux := http.NewServeMux()

	// health
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// upload endpoint: spreadsheet or JSON file in, ranked leads out
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "upload")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			reqLog.WithError(err).Warn("bad multipart form")
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			reqLog.Warn("missing file field")
			http.Error(w, "no file provided", http.StatusBadRequest)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			reqLog.WithError(err).Error("read upload failed")
			http.Error(w, "failed to read file", http.StatusInternalServerError)
			return
		}

		timestamp := store.Timestamp()
		if _, err := st.SaveUpload(data, header.Filename, timestamp); err != nil {
			reqLog.WithError(err).Error("save upload failed")
		}

		leads, err := dataset.Load(header.Filename, data)
		if err != nil {
			reqLog.WithError(err).Warn("dataset parse failed")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		reqLog = reqLog.WithField("leads", len(leads))
		reqLog.Info("processing uploaded leads")

		start := time.Now()
		scored := rk.Rank(r.Context(), leads)
		reqLog.WithField("duration_ms", time.Since(start).Milliseconds()).Info("ranking finished")

		if _, err := st.SaveProcessed(scored, timestamp); err != nil {
			reqLog.WithError(err).Error("save processed failed")
		}
		if err := st.SetCurrent(scored); err != nil {
			reqLog.WithError(err).Error("save current failed")
		}

		writeJSON(w, map[string]any{
			"leads": scored,
			"stats": aggregator.Aggregate(scored),
		})
	})

	// leads endpoint: GET returns the stored dataset, POST reprocesses it
	mux.HandleFunc("/leads", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "leads")
		switch r.Method {
		case http.MethodGet:
			leads, err := st.Current()
			if err != nil {
				reqLog.WithError(err).Error("load current failed")
				http.Error(w, "failed to load leads", http.StatusInternalServerError)
				return
			}
			writeJSON(w, map[string]any{
				"leads": leads,
				"stats": aggregator.Aggregate(leads),
			})

		case http.MethodPost:
			stored, err := st.Current()
			if err != nil {
				reqLog.WithError(err).Error("load current failed")
				http.Error(w, "failed to load leads", http.StatusInternalServerError)
				return
			}
			if len(stored) == 0 {
				http.Error(w, "no leads to process", http.StatusBadRequest)
				return
			}
			// strip old insights: re-extraction starts from the base lead
			base := make([]types.Lead, len(stored))
			for i, s := range stored {
				base[i] = s.Lead
			}
			reqLog.WithField("leads", len(base)).Info("reprocessing stored leads")
			scored := rk.Rank(r.Context(), base)
			if err := st.SetCurrent(scored); err != nil {
				reqLog.WithError(err).Error("save current failed")
			}
			writeJSON(w, map[string]any{
				"success": true,
				"message": fmt.Sprintf("Reprocessed %d leads", len(scored)),
				"leads":   scored,
				"stats":   aggregator.Aggregate(scored),
			})

		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// single-transcript extraction
	mux.HandleFunc("/extract", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "extract")
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			Transcript string `json:"transcript"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			reqLog.WithError(err).Warn("bad request body")
			http.Error(w, "transcript must be a string", http.StatusBadRequest)
			return
		}
		insights := ex.Extract(r.Context(), req.Transcript)
		writeJSON(w, map[string]any{"insights": insights})
	})

	// stored file listing for the dashboard's history view
	mux.HandleFunc("/files", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "files")
		uploads, err := st.ListUploads()
		if err != nil {
			reqLog.WithError(err).Error("list uploads failed")
			http.Error(w, "failed to list files", http.StatusInternalServerError)
			return
		}
		processed, err := st.ListProcessed()
		if err != nil {
			reqLog.WithError(err).Error("list processed failed")
			http.Error(w, "failed to list files", http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]any{
			"uploads":   uploads,
			"processed": processed,
		})
	})

	// model configuration and prompt pair, for the dashboard's explainer views
	mux.HandleFunc("/config", func(w http.ResponseWriter, r *http.Request) {
		cfg := llmCfg
		if cfg.BaseURL == "" {
			cfg.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Model == "" {
			cfg.Model = "gpt-4o-mini"
		}
		writeJSON(w, map[string]any{
			"model":       strings.ReplaceAll(cfg.Model, `"`, ""),
			"provider":    providerName(cfg.BaseURL),
			"baseUrl":     cfg.BaseURL,
			"temperature": cfg.Temperature,
			"maxTokens":   cfg.MaxTokens,
			"prompts": map[string]string{
				"system": extractor.SystemPrompt,
				"user":   extractor.UserPromptTemplate,
			},
		})
	})

	addr := fmt.Sprintf(":%s", envOr("PORT", "8080"))
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.WithField("addr", addr).Info("listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server terminated")
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func providerName(baseURL string) string {
	switch {
	case strings.Contains(baseURL, "cerebras"):
		return "Cerebras"
	case strings.Contains(baseURL, "together"):
		return "Together AI"
	case strings.Contains(baseURL, "azure"):
		return "Azure OpenAI"
	case strings.Contains(baseURL, "anthropic"):
		return "Anthropic"
	case strings.Contains(baseURL, "groq"):
		return "Groq"
	default:
		return "OpenAI"
	}
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
