package service

import (
	"group-exercise-api/internal/domain"
	"group-exercise-api/internal/dto"
)

func toParticipantResponse(p *domain.Participant) *dto.ParticipantResponse {
	if p == nil {
		return nil
	}
	return &dto.ParticipantResponse{
		ID:        p.ID,
		Nickname:  p.Nickname,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// toGroupResponse builds the full group projection. Image references are
// projected to public URLs here so every response shape goes through the
// same normalizer, including nested collections.
func toGroupResponse(group *domain.Group, images *ImageService, recordCount *int64) *dto.GroupResponse {
	participants := make([]dto.ParticipantResponse, 0, len(group.Participants))
	for i := range group.Participants {
		participants = append(participants, *toParticipantResponse(&group.Participants[i]))
	}

	return &dto.GroupResponse{
		ID:                group.ID,
		Name:              group.Name,
		Description:       group.Description,
		PhotoURL:          images.PublicURL(group.PhotoURL),
		GoalRep:           group.GoalRep,
		Tags:              append([]string{}, group.Tags...),
		DiscordWebhookURL: group.DiscordWebhookURL,
		DiscordInviteURL:  group.DiscordInviteURL,
		LikeCount:         group.LikeCount,
		Badges:            append([]string{}, group.Badges...),
		Owner:             toParticipantResponse(group.Owner),
		Participants:      participants,
		RecordCount:       recordCount,
		CreatedAt:         group.CreatedAt,
		UpdatedAt:         group.UpdatedAt,
	}
}

func toRecordResponse(record *domain.Record, images *ImageService) *dto.RecordResponse {
	return &dto.RecordResponse{
		ID:           record.ID,
		GroupID:      record.GroupID,
		ExerciseType: string(record.ExerciseType),
		Description:  record.Description,
		Time:         record.Time,
		Distance:     record.Distance,
		Photos:       images.PublicURLs(record.Photos),
		Author:       toParticipantResponse(record.Author),
		CreatedAt:    record.CreatedAt,
		UpdatedAt:    record.UpdatedAt,
	}
}
