package cron

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"dialvet/config"
	businessRepo "dialvet/database/repository/business"
	"dialvet/models"
	"dialvet/services/storage"
	"dialvet/services/tasks"
	"dialvet/services/telephony"

	"github.com/hibiken/asynq"
)

// InitRecordingWorker runs the async recording-archive worker in background.
// Tasks are enqueued by the call service when a survey call completes; the
// worker pulls the recording media from the telephony provider and uploads
// it to the object store. Failures are retried by the queue and never touch
// the live call path.
func InitRecordingWorker(repo businessRepo.BusinessRepository, tel telephony.Client, store storage.StorageService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeArchiveRecording, handleArchiveRecording(repo, tel, store))

	go func() {
		log.Println("[RecordingWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RecordingWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RecordingWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleArchiveRecording(repo businessRepo.BusinessRepository, tel telephony.Client, store storage.StorageService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.RecordingPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[RecordingWorker] invalid payload: %v", err)
			return err
		}

		localPath, err := tel.FetchRecording(ctx, p.CallSid)
		if err != nil {
			log.Printf("[RecordingWorker] fetch recording for call %s: %v", p.CallSid, err)
			return err
		}
		defer os.Remove(localPath)

		publicID, err := store.UploadFile(ctx, localPath, "recordings")
		if err != nil {
			log.Printf("[RecordingWorker] upload recording for call %s: %v", p.CallSid, err)
			return err
		}

		url, err := store.GetDownloadURL(ctx, publicID, 0)
		if err != nil {
			log.Printf("[RecordingWorker] resolve recording URL for call %s: %v", p.CallSid, err)
			return err
		}

		if err := repo.SetRecordingURL(ctx, p.BusinessID, url); err != nil {
			log.Printf("[RecordingWorker] store recording URL for business %s: %v", p.BusinessID, err)
			return err
		}

		log.Printf("[RecordingWorker] archived recording for call %s -> %s", p.CallSid, publicID)
		return nil
	}
}
