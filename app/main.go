package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	mysqlRepo "github.com/pageturn/pageturn/internal/repository/mysql"
	"github.com/pageturn/pageturn/internal/rest"
	"github.com/pageturn/pageturn/internal/rest/middleware"
	"github.com/pageturn/pageturn/internal/rest/request"
	"github.com/pageturn/pageturn/internal/usecase/book"
	"github.com/pageturn/pageturn/internal/usecase/comment"
	"github.com/pageturn/pageturn/internal/usecase/review"
	"github.com/pageturn/pageturn/internal/usecase/survey"
)

const (
	defaultTimeout     = 30
	defaultAddress     = ":9090"
	dbMaxRetry         = 10
	dbRetryIntervalSec = 2
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("no .env file found, relying on environment")
	}
}

func main() {
	//prepare database
	dbHost := os.Getenv("DATABASE_HOST")
	dbPort := os.Getenv("DATABASE_PORT")
	dbUser := os.Getenv("DATABASE_USER")
	dbPass := os.Getenv("DATABASE_PASS")
	dbName := os.Getenv("DATABASE_NAME")
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", dbUser, dbPass, dbHost, dbPort, dbName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	dsn := fmt.Sprintf("%s?%s", connection, val.Encode())

	var (
		db  *gorm.DB
		err error
	)

	for i := range dbMaxRetry {
		db, err = gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err != nil {
			log.Printf("failed to open connection to database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
		} else {
			sqlDB, err := db.DB()
			if err != nil {
				log.Printf("failed to get sql.DB from gorm.DB (attempt %d/%d): %v", i+1, dbMaxRetry, err)
				continue
			}
			err = sqlDB.Ping()
			if err == nil {
				break
			}
			log.Printf("failed to ping database (attempt %d/%d): %v", i+1, dbMaxRetry, err)
			_ = sqlDB.Close()
		}

		time.Sleep(dbRetryIntervalSec * time.Second)
	}

	if err != nil {
		log.Fatal("could not connect to database after retries:", err)
	}

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("got error when getting sql.DB from gorm.DB", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Fatal("got error when closing the DB connection", err)
		}
	}()

	// prepare gin
	request.RegisterValidations()
	route := gin.Default()
	route.Use(middleware.CORS())
	timeoutStr := os.Getenv("CONTEXT_TIMEOUT")
	timeout, err := strconv.Atoi(timeoutStr)
	if err != nil {
		log.Println("failed to parse timeout, using default timeout")
		timeout = defaultTimeout
	}
	timeoutContext := time.Duration(timeout) * time.Second
	route.Use(middleware.SetRequestContextWithTimeout(timeoutContext))

	// Prepare Repository
	bookRepo := mysqlRepo.NewBookRepository(db)
	reviewRepo := mysqlRepo.NewReviewRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	surveyRepo := mysqlRepo.NewSurveyRepository(db)

	// Build service Layer
	bookSvc := book.NewService(bookRepo, reviewRepo)
	reviewSvc := review.NewService(reviewRepo)
	commentSvc := comment.NewService(commentRepo, reviewRepo)
	surveySvc := survey.NewService(surveyRepo)

	bookHandler := rest.NewBookHandler(bookSvc)
	reviewHandler := rest.NewReviewHandler(reviewSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	surveyHandler := rest.NewSurveyHandler(surveySvc)

	// Register routes
	route.GET("/books", bookHandler.FetchBook)
	route.POST("/books", bookHandler.Store)
	route.GET("/books/:id", bookHandler.GetByID)
	route.PUT("/books/:id", bookHandler.Update)
	route.DELETE("/books/:id", bookHandler.Delete)
	route.GET("/books/:id/reviews", reviewHandler.FetchByBook)
	route.GET("/books/:id/rating", reviewHandler.GetRating)

	route.GET("/reviews", reviewHandler.FetchReview)
	route.POST("/reviews", reviewHandler.Store)
	route.GET("/reviews/:id", reviewHandler.GetByID)
	route.PUT("/reviews/:id", reviewHandler.Update)
	route.DELETE("/reviews/:id", reviewHandler.Delete)
	route.GET("/reviews/user/:userId", reviewHandler.FetchByUser)
	route.GET("/reviews/rating/:rating", reviewHandler.FetchByRating)

	route.GET("/comments", commentHandler.FetchComment)
	route.POST("/comments", commentHandler.Store)
	route.GET("/comments/top-level", commentHandler.FetchTopLevel)
	route.GET("/comments/:id", commentHandler.GetByID)
	route.PUT("/comments/:id", commentHandler.Update)
	route.DELETE("/comments/:id", commentHandler.Delete)
	route.GET("/comments/:id/replies", commentHandler.FetchReplies)
	route.GET("/comments/user/:userId", commentHandler.FetchByUser)
	route.GET("/comments/review/:reviewId", commentHandler.FetchByReview)
	route.GET("/comments/review/:reviewId/top-level", commentHandler.FetchTopLevelByReview)
	route.GET("/comments/review/:reviewId/count", commentHandler.CountByReview)

	route.GET("/surveys", surveyHandler.FetchSurvey)
	route.POST("/surveys", surveyHandler.Store)
	route.GET("/surveys/available", surveyHandler.FetchAvailable)
	route.GET("/surveys/active", surveyHandler.FetchCurrentlyActive)
	route.GET("/surveys/:id", surveyHandler.GetByID)
	route.PUT("/surveys/:id", surveyHandler.Update)
	route.DELETE("/surveys/:id", surveyHandler.Delete)
	route.PATCH("/surveys/:id/status", surveyHandler.UpdateStatus)
	route.POST("/surveys/:id/responses", surveyHandler.RecordResponse)
	route.GET("/surveys/status/:status", surveyHandler.FetchByStatus)
	route.GET("/surveys/status/:status/count", surveyHandler.CountByStatus)
	route.GET("/surveys/creator/:creatorId", surveyHandler.FetchByCreator)
	route.GET("/surveys/book/:bookId", surveyHandler.FetchByBook)

	// Start Server
	address := os.Getenv("SERVER_ADDRESS")
	if address == "" {
		address = defaultAddress
	}
	srv := &http.Server{
		Addr:    address,
		Handler: route,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server is running on %s\n", address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err) // nolint
		}
	}()

	// shutdown
	<-ctx.Done()
	log.Println("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	log.Println("Server exiting")
}
