package asynq

import (
	"encoding/json"
	"errors"
	"os"
	"time"

	"smartedu.io/infrastructure/logger"
	queue_tasks "smartedu.io/infrastructure/message_queue/tasks"
	mq_types "smartedu.io/infrastructure/message_queue/types"
	"github.com/hibiken/asynq"
)

type AsynqBroker struct {
	Client *asynq.Client
}

func (aq *AsynqBroker) Start() {
	redisConnOpt := asynq.RedisClientOpt{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	aq.Client = asynq.NewClient(redisConnOpt)

	srv := asynq.NewServer(
		redisConnOpt,
		asynq.Config{
			Concurrency: 100,
			Queues: map[string]int{
				string(mq_types.High):   7,
				string(mq_types.Medium): 2,
				string(mq_types.Low):    1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(string(queue_tasks.HandleGalleryRefreshTaskName), queue_tasks.HandleGalleryRefreshTask)
	mux.HandleFunc(string(queue_tasks.HandleRiskSweepTaskName), queue_tasks.HandleRiskSweepTask)
	mux.HandleFunc(string(queue_tasks.HandleAdvisorAlertTaskName), queue_tasks.HandleAdvisorAlertTask)
	mux.HandleFunc(string(queue_tasks.HandleBackupTaskName), queue_tasks.HandleBackupTask)

	go aq.scheduleRiskSweep()

	srv.Run(mux)
}

func (aq *AsynqBroker) Enqueue(task mq_types.QueueTask) {
	if task.TimeOut == 0 {
		task.TimeOut = 60
	}
	if task.MaxRetry == 0 {
		task.MaxRetry = 10
	}
	aq.Client.Enqueue(asynq.NewTask(string(task.Name), task.Payload),
		asynq.ProcessIn(time.Duration(task.ProcessIn)*time.Second),
		asynq.MaxRetry(task.MaxRetry),
		asynq.Timeout(time.Second*time.Duration(task.TimeOut)),
		asynq.Queue(string(task.Priority)))
}

// scheduleRiskSweep enqueues the nightly sweep once a day. Uniqueness over a
// 23h window keeps multiple replicas from stacking duplicate sweeps.
func (aq *AsynqBroker) scheduleRiskSweep() {
	payload, err := json.Marshal(queue_tasks.RiskSweepPayload{Semester: ""})
	if err != nil {
		logger.Error("error marshalling payload for risk sweep schedule")
		return
	}
	for {
		_, err := aq.Client.Enqueue(asynq.NewTask(string(queue_tasks.HandleRiskSweepTaskName), payload),
			asynq.ProcessIn(time.Hour*24),
			asynq.MaxRetry(3),
			asynq.Timeout(time.Minute*30),
			asynq.Queue(string(mq_types.Low)),
			asynq.Unique(time.Hour*23))
		if err != nil && !errors.Is(err, asynq.ErrDuplicateTask) {
			logger.Error("failed to schedule nightly risk sweep", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
		}
		time.Sleep(time.Hour * 24)
	}
}
