/*
 *    Copyright 2023 iFood
 *
 *    Licensed under the Apache License, Version 2.0 (the "License");
 *    you may not use this file except in compliance with the License.
 *    You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 *    Unless required by applicable law or agreed to in writing, software
 *    distributed under the License is distributed on an "AS IS" BASIS,
 *    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *    See the License for the specific language governing permissions and
 *    limitations under the License.
 */

package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"strings"
	"time"
	adaptersin "upload-sentry/adapters/in"
	adaptersout "upload-sentry/adapters/out"
	"upload-sentry/common"
	"upload-sentry/config"
	"upload-sentry/domain/entities"
	portsout "upload-sentry/domain/ports/out"
	"upload-sentry/domain/services"
	"upload-sentry/domain/services/audit"
	"upload-sentry/domain/services/cleanup"
	"upload-sentry/domain/services/detection"
	"upload-sentry/domain/services/notification"
	"upload-sentry/domain/services/remediation"
	"upload-sentry/domain/services/scan"
	"upload-sentry/domain/services/settings"
	"upload-sentry/domain/services/stages"
	sentryhttp "upload-sentry/http"
	"upload-sentry/logging"
	"upload-sentry/metrics"
	"upload-sentry/pkg/awsutils"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/uber-go/tally/v4"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	"gopkg.in/DataDog/dd-trace-go.v1/profiler"
)

const smsRateLimitKey = "sms"

type artifactBackend interface {
	portsout.ArtifactStore
	portsout.ArtifactWriter
}

//nolint:cyclop
func Start(ctx context.Context) error {
	runtime.GOMAXPROCS(1)

	appConfig, err := config.LoadConfig()
	if err != nil {
		return err
	}

	// Enable Datadog tracer
	tracer.Start()
	defer tracer.Stop()

	// Enable Datadog Profiler
	if err = profiler.Start(); err != nil {
		return err
	}
	defer profiler.Stop()

	logger, err := logging.NewZapLogger(appConfig.Scanner.DebugLog)
	if err != nil {
		return err
	}

	var metricsHandler http.Handler
	var metricsScope tally.Scope
	var metricsClose io.Closer

	if appConfig.HTTPServer.Metrics {
		metricsScope, metricsHandler, metricsClose = metrics.NewPrometheusScope()
		defer metricsClose.Close()
	} else {
		metricsScope, metricsHandler, _ = metrics.NewNoopScope()
	}

	var client awsutils.Clients
	session, err := client.Session(appConfig.Aws.Region, appConfig.Aws.Resolver)

	if err != nil {
		return fmt.Errorf("failed to initialize aws client. Error: %s, Region: %s, Resolver: %s", err, appConfig.Aws.Region, appConfig.Aws.Resolver)
	}

	cache := adaptersout.NewCache(appConfig.Redis.URL, appConfig.Redis.Password, appConfig.Redis.UseTLS)

	// Storage
	var store artifactBackend
	var ownerSource adaptersout.OwnerSource
	var uploadBucket *adaptersout.S3ArtifactStore

	switch appConfig.Storage.Backend {
	case config.StorageS3:
		uploadBucket = adaptersout.NewS3ArtifactStore(session, nil, appConfig.Aws.UploadBucket, logger)
		store = uploadBucket
		ownerSource = uploadBucket
	default:
		localStore, err := adaptersout.NewLocalArtifactStore(afero.NewOsFs(), appConfig.Storage.Dir, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage. Error: %s", err)
		}
		store = localStore
	}

	// Audit log
	var auditLog portsout.AuditLog

	switch appConfig.Audit.Backend {
	case config.AuditRedis:
		auditLog = adaptersout.NewCacheAuditLog(cache, appConfig.Audit.MaxEntries, logger)
	default:
		fileLog, err := adaptersout.NewFileAuditLog(afero.NewOsFs(), appConfig.Audit.Path, appConfig.Audit.MaxEntries, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize audit log. Error: %s", err)
		}
		auditLog = fileLog
	}

	recorder := audit.NewRecorder(auditLog, logger)

	settingsService, err := settings.NewSettingsService(adaptersout.NewCacheSettingsStore(cache, logger), settings.Form{
		DangerousExtensions: appConfig.Scanner.DangerousExtensions,
		DangerousMimeTypes:  appConfig.Scanner.DangerousMimeTypes,
		MaxScanSize:         appConfig.Scanner.MaxScanSize,
		Signatures:          appConfig.Scanner.Signatures,
		EnableScanning:      appConfig.Scanner.EnableScanning,
		EnableAutoDelete:    appConfig.Scanner.EnableAutoDelete,
		EnableNotifications: appConfig.Scanner.EnableNotifications,
		EnableLogging:       appConfig.Scanner.EnableLogging,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize settings. Error: %s", err)
	}

	ownershipResolver := adaptersout.NewCacheOwnershipResolver(cache, ownerSource, logger)

	// Notifiers
	rateLimiter := common.NewRateLimiter(appConfig.Redis.URL, appConfig.Redis.Password, appConfig.Redis.UseTLS, common.RateLimitConfig{
		Hour:   appConfig.Notification.SMSPerHour,
		Minute: appConfig.Notification.SMSPerMinute,
		Key:    smsRateLimitKey,
	})

	smsNotifier := adaptersout.NewSMSNotifier(awsutils.NewSNSClient(session, nil), rateLimiter, appConfig.Notification.Phones, logger)
	notifiers := []portsout.Notifier{smsNotifier}
	messengers := []portsout.Messenger{smsNotifier}
	viewers := map[entities.ViewerMimetype]portsout.Messenger{adaptersin.MIMEApplicationSMS: smsNotifier}

	if appConfig.Notification.Slack.Webhook != "" {
		slackNotifier := adaptersout.NewSlackNotifier(appConfig.Notification.Slack.Webhook, appConfig.Notification.Slack.ChannelID, logger)
		notifiers = append(notifiers, slackNotifier)
		messengers = append(messengers, slackNotifier)
		viewers[adaptersin.MIMEApplicationSlack] = slackNotifier
	}

	notifier := adaptersout.NewMultiNotifier(logger, notifiers...)

	// Detection
	classifier := detection.NewHeuristicClassifier()
	streamScanner := detection.NewStreamScanner(store, appConfig.Scanner.ChunkSize, appConfig.Scanner.WindowSize, logger)
	policy := detection.NewDetectionPolicy(classifier, streamScanner, recorder, logger)
	pipeline := remediation.NewPipeline(store, ownershipResolver, notifier, recorder, logger)
	inspectionService := services.NewInspectionService(settingsService, policy, pipeline, metricsScope, logger)

	statisticsRepo := adaptersout.NewCacheStatisticsRepository(cache, logger)
	statisticsService := services.NewDetectionStatisticsService(statisticsRepo, viewers, logger)

	sqsService := awsutils.SQS{}
	sqsService.Init(session, nil)

	// Channels
	inputChannel := make(chan *entities.InspectionRequest)
	cleanupChannel := make(chan *stages.Cleanup[entities.InspectionRequest])

	// Notifications
	dailyStatistics := notification.NewDailyStatistics(statisticsRepo, logger)
	operatorAlert := notification.NewOperatorAlert(messengers, logger)
	notificationHandler := notification.NewNotificationHandler([]notification.Job{dailyStatistics, operatorAlert}, logger)

	// Inspections made outside the queue report to the notification jobs directly
	observedInspector := notification.NewObservedInspector(inspectionService, notificationHandler)
	scanAllService := services.NewScanAllService(store, cache, settingsService, observedInspector, recorder, appConfig.Scanner.Workers, logger)

	// Cleanups
	queueCleanup := cleanup.NewQueueCleanup(appConfig.Aws.Queue, &sqsService, logger)
	cleanupHandler := cleanup.NewCleanupHandler([]cleanup.Job{queueCleanup}, logger)

	// Stages initialization
	inspectionStage := stages.NewStage[entities.InspectionRequest, entities.InspectionResult](scan.NewInspectionHandler(inspectionService, logger), inputChannel, cleanupChannel, logger)
	notificationStage := stages.NewStage[entities.InspectionResult, entities.Empty](notificationHandler, inspectionStage.Output(), nil, logger)
	cleanupStage := stages.NewStage[stages.Cleanup[entities.InspectionRequest], entities.Empty](cleanupHandler, cleanupChannel, nil, logger)

	inspectionStage.Process(ctx)
	notificationStage.Process(ctx)
	cleanupStage.Process(ctx)

	notificationHandler.HandleAsync(ctx, time.Duration(appConfig.Notification.UpdateInterval)*time.Second)

	// Controllers
	if uploadBucket != nil && appConfig.Aws.Queue != "" {
		queueController := adaptersin.NewQueueController(appConfig.Aws.Queue, uploadBucket.Bucket(), uploadBucket, ownershipResolver, settingsService, recorder, inputChannel, &sqsService, metricsScope, logger)
		go queueController.AsyncScan(ctx)
	}

	uploadController := adaptersin.NewUploadController(store, ownershipResolver, observedInspector, logger)
	adminController := adaptersin.NewAdminController(settingsService, scanAllService, recorder, logger)
	statisticsController := adaptersin.NewStatisticsController(statisticsService, logger)

	fiberConfig := sentryhttp.FiberConfig{
		MaxRequestSize:    appConfig.HTTPServer.MaxRequestSize,
		AuthorizationKeys: appConfig.HTTPServer.AuthorizationKeys,
		Profiler:          appConfig.HTTPServer.Profiler,
		Swagger:           appConfig.HTTPServer.Swagger,
		Metrics:           adaptor.HTTPHandler(metricsHandler),
		RequestLogger: func(c *fiber.Ctx) error {
			// Prevent generating lots of requests because of healthcheck
			if !strings.HasPrefix(c.Path(), "/healthcheck/") && !strings.HasPrefix(c.Path(), "/metrics") {
				logger.Infow("Received webapi request", "ip", c.IP(), "method", c.Method(), "url", c.BaseURL(), "path", c.Path(),
					"response_status", c.Response().StatusCode())
			}
			return c.Next()
		},
		Readiness: func(c *fiber.Ctx) error {
			if appConfig.Aws.Queue != "" {
				req, err := http.NewRequestWithContext(c.Context(), "GET", appConfig.Aws.Queue, http.NoBody)
				if err != nil {
					logger.Errorw("Failed to create SQS request in readiness.", "error", err)
					return c.Status(fiber.StatusServiceUnavailable).SendString(fmt.Sprintf("Failed to create request %s", err))
				}

				resp, err := http.DefaultClient.Do(req)
				if err != nil {
					logger.Errorw("Failed to connect to the SQS in readiness.", "error", err)
					return c.Status(fiber.StatusServiceUnavailable).SendString(fmt.Sprintf("SQS not connectable. %s", err))
				}
				defer resp.Body.Close()
			}

			_, err := cache.List("XXXXX")
			if err != nil {
				logger.Errorw("Failed to connect to the cache.", "error", err)
				return c.Status(fiber.StatusServiceUnavailable).SendString(fmt.Sprintf("Elasticache not connectable. %s", err))
			}

			return c.SendStatus(fiber.StatusOK)
		},
		Liveness: func(c *fiber.Ctx) error {
			return c.SendStatus(fiber.StatusOK)
		},
		Handlers: []sentryhttp.Handler{
			{HTTPMethod: "POST", Path: "/files", HandlerFunc: uploadController.Upload},
			{HTTPMethod: "GET", Path: "/settings", HandlerFunc: adminController.GetSettings},
			{HTTPMethod: "PUT", Path: "/settings", HandlerFunc: adminController.UpdateSettings},
			{HTTPMethod: "POST", Path: "/scans", HandlerFunc: adminController.ScanAll},
			{HTTPMethod: "GET", Path: "/logs", HandlerFunc: adminController.GetLogs},
			{HTTPMethod: "GET", Path: "/statistics", HandlerFunc: statisticsController.GetStatistics},
		},
	}

	app, err := sentryhttp.CreateFiberApp(fiberConfig, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize fiber framework. Error: %s", err)
	}

	return app.Listen(fmt.Sprintf(":%d", appConfig.HTTPServer.Port))
}
