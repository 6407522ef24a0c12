package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"corpora/annotate"
	"corpora/controllers"
	"corpora/core"
	"corpora/ingester"
	"corpora/internal"
	"corpora/models"
	"corpora/parser"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	godotenv.Load()

	// connect to the database
	db, err := core.InitDB()
	if err != nil {
		panic(err)
	}

	// auto migrate the database
	err = db.AutoMigrate(
		&models.Corpus{},
		&models.Document{},
		&models.Sentence{},
	)
	if err != nil {
		panic(err)
	}

	if len(os.Args) > 1 && os.Args[1] == "ingest" {
		runIngest(db)
		return
	}

	runServer(db)
}

// split is one named ingestion run, e.g. Train=data/train.bioc.xml.
type split struct {
	Name string
	Path string
}

func runIngest(db *gorm.DB) {
	logger, err := internal.NewLogger()
	if err != nil {
		panic(err)
	}

	splits, err := parseSources(os.Getenv("CORPUS_SOURCES"))
	if err != nil {
		logger.Fatalf("Bad CORPUS_SOURCES: %v", err)
	}

	selectors := selectorsFromEnv()
	engine := annotationEngine()
	session := core.NewSession(db)

	for _, sp := range splits {
		source, err := parser.NewXMLSource(sp.Path, selectors)
		if err != nil {
			logger.Fatalf("Failed to open source for corpus %v: %v", sp.Name, err)
		}

		builder := ingester.NewBuilder(source, engine, logger)
		corpus, stats, err := builder.Build(context.Background(), sp.Name)
		if err != nil {
			logger.Fatalf("Failed to build corpus %v: %v", sp.Name, err)
		}

		printSample(corpus)

		session.Add(corpus)
		if err := session.Commit(); err != nil {
			logger.Fatalf("Failed to commit corpus %v: %v", sp.Name, err)
		}
		logger.Infof("Persisted corpus %v: %v documents, %v sentences, %v tokens, %v skipped",
			sp.Name, stats.Documents, stats.Sentences, stats.Tokens, stats.Skipped)

		// Test environments keep corpora small by pruning most documents
		// after the initial commit.
		if fraction := pruneFraction(); fraction > 0 {
			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			removed := ingester.Prune(corpus, fraction, rng)

			session.Add(corpus)
			if err := session.Commit(); err != nil {
				logger.Fatalf("Failed to re-commit pruned corpus %v: %v", sp.Name, err)
			}
			logger.Infof("Pruned %v documents from corpus %v, %v remain",
				removed, sp.Name, corpus.DocumentCount())
		}
	}
}

// parseSources parses a comma-separated list of Name=path pairs.
func parseSources(raw string) ([]split, error) {
	if raw == "" {
		return nil, fmt.Errorf("no sources configured, set CORPUS_SOURCES to Name=path[,Name=path...]")
	}

	splits := make([]split, 0)
	for _, pair := range strings.Split(raw, ",") {
		name, path, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("bad source %q, want Name=path", pair)
		}
		splits = append(splits, split{Name: name, Path: path})
	}

	return splits, nil
}

func selectorsFromEnv() parser.Selectors {
	selectors := parser.DefaultSelectors()
	if v := os.Getenv("DOC_SELECTOR"); v != "" {
		selectors.Document = v
	}
	if v := os.Getenv("TEXT_SELECTOR"); v != "" {
		selectors.Text = v
	}
	if v := os.Getenv("ID_SELECTOR"); v != "" {
		selectors.Identifier = v
	}

	return selectors
}

func annotationEngine() annotate.Engine {
	if url := os.Getenv("ANNOTATOR_URL"); url != "" {
		return annotate.NewHTTPEngine(url, 60*time.Second)
	}

	return annotate.NewSimpleEngine()
}

func pruneFraction() float64 {
	raw := os.Getenv("PRUNE_FRACTION")
	if raw == "" {
		return 0
	}

	fraction, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	return fraction
}

// printSample shows the first annotated sentence of the first document, the
// quickest way to eyeball an ingestion run.
func printSample(corpus *models.Corpus) {
	if corpus.DocumentCount() == 0 {
		fmt.Printf("Corpus %v is empty\n", corpus.Name)
		return
	}

	doc := corpus.Documents[0]
	fmt.Printf("Corpus %v, document %v:\n", corpus.Name, doc.ExternalID)
	if doc.SentenceCount() == 0 {
		return
	}

	sentence := doc.Sentences[0]
	fmt.Printf("  %v\n", sentence.Text)
	fmt.Printf("  words:  %v\n", strings.Join(sentence.Words, " "))
	fmt.Printf("  pos:    %v\n", strings.Join(sentence.Pos, " "))
	fmt.Printf("  lemmas: %v\n", strings.Join(sentence.Lemmas, " "))
	fmt.Printf("  deps:   %v\n", strings.Join(sentence.Deps, " "))
}

func runServer(db *gorm.DB) {
	logger, err := internal.NewLogger()
	if err != nil {
		panic(err)
	}

	// set up http server
	engine := gin.Default()
	err = engine.SetTrustedProxies(nil)
	if err != nil {
		panic(err)
	}

	healthController := controllers.HealthController{}
	corporaController := controllers.CorporaController{
		DB:     db,
		Logger: logger,
	}

	router := Router{
		healthController:  &healthController,
		corporaController: &corporaController,
	}

	router.RegisterRoutes(engine)

	err = engine.Run()
	if err != nil {
		return
	}
}
