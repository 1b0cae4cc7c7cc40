package services

import (
	"fmt"

	"github.com/terraincognita07/lifeboard/internal/models"
)

var ErrConflictTopicLimit = fmt.Errorf("maximum of %d conflict topics allowed, delete or resolve an existing topic first", models.MaxConflictTopics)

type ConflictRepository interface {
	ListByUser(userID uint) ([]models.ConflictTopic, error)
	FindByID(topicID uint) (models.ConflictTopic, bool, error)
	CreateWithinLimit(topic *models.ConflictTopic, limit int) (bool, error)
	Save(topic *models.ConflictTopic) error
	Delete(topicID uint) error
}

type ConflictTopicChanges struct {
	Topic              *string `json:"topic"`
	Description        *string `json:"description"`
	ResolutionStrategy *string `json:"resolution_strategy"`
	ProgressNotes      *string `json:"progress_notes"`
}

type ConflictService struct {
	topics ConflictRepository
}

func NewConflictService(topics ConflictRepository) *ConflictService {
	return &ConflictService{topics: topics}
}

func (service *ConflictService) List(userID uint) ([]models.ConflictTopic, error) {
	return service.topics.ListByUser(userID)
}

func (service *ConflictService) Get(userID uint, topicID uint) (models.ConflictTopic, error) {
	topic, found, err := service.topics.FindByID(topicID)
	return authorize(topic, found, err, userID)
}

func (service *ConflictService) Create(userID uint, changes ConflictTopicChanges) (models.ConflictTopic, error) {
	if changes.Topic == nil {
		return models.ConflictTopic{}, fmt.Errorf("%w: topic is required", ErrInvalidInput)
	}

	topic := models.ConflictTopic{UserID: userID}
	if err := service.apply(&topic, changes); err != nil {
		return models.ConflictTopic{}, err
	}
	created, err := service.topics.CreateWithinLimit(&topic, models.MaxConflictTopics)
	if err != nil {
		return models.ConflictTopic{}, err
	}
	if !created {
		return models.ConflictTopic{}, ErrConflictTopicLimit
	}
	return topic, nil
}

func (service *ConflictService) Update(userID uint, topicID uint, changes ConflictTopicChanges) (models.ConflictTopic, error) {
	topic, err := service.Get(userID, topicID)
	if err != nil {
		return models.ConflictTopic{}, err
	}
	if err := service.apply(&topic, changes); err != nil {
		return models.ConflictTopic{}, err
	}
	if err := service.topics.Save(&topic); err != nil {
		return models.ConflictTopic{}, err
	}
	return topic, nil
}

func (service *ConflictService) Delete(userID uint, topicID uint) error {
	if _, err := service.Get(userID, topicID); err != nil {
		return err
	}
	return service.topics.Delete(topicID)
}

func (service *ConflictService) apply(topic *models.ConflictTopic, changes ConflictTopicChanges) error {
	if changes.Topic != nil {
		text, err := requiredText("topic", *changes.Topic)
		if err != nil {
			return err
		}
		topic.Topic = text
	}
	applyText(&topic.Description, changes.Description)
	applyText(&topic.ResolutionStrategy, changes.ResolutionStrategy)
	applyText(&topic.ProgressNotes, changes.ProgressNotes)
	return nil
}
