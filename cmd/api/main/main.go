//go:build lambda
// +build lambda

package main

import (
	"context"

	"top-sales-tracker/internal/config"
	"top-sales-tracker/internal/logger"
	"top-sales-tracker/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"
)

// @title           Top Sales Tracker API
// @version         1.0
// @description     Most expensive NFT sales per chain and timeframe

// @BasePath  /api/v1

var ginLambda *ginadapter.GinLambda

func init() {
	cfg, err := config.FromEnv()
	if err != nil {
		logger.InitLogger("")
		logger.Fatal("Invalid configuration", zap.Error(err))
	}
	logger.InitLogger(cfg.Stage)

	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}
	// Lambda instances are short lived; idle sessions are dropped with the instance
	srv.StartBackground(context.Background())

	ginLambda = ginadapter.New(srv.Router)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("request", spew.Sdump(req)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
