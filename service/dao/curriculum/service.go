// Package curriculum loads the curriculum document and parses it into
// the session/lesson/action model. A document that cannot be parsed
// degrades to the empty curriculum, it never fails the caller.
package curriculum

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/codelab/tutor/internal/yml"
	"github.com/codelab/tutor/model"
	"github.com/codelab/tutor/service/meta"
	"gopkg.in/yaml.v3"
)

type Service struct {
	metaService *meta.Service
}

// New creates a curriculum service reading documents through assets.
func New(metaService *meta.Service) *Service {
	return &Service{metaService: metaService}
}

// Load reads and parses the curriculum at URL. Malformed documents
// yield the empty curriculum and a logged warning.
func (s *Service) Load(ctx context.Context, URL string) *model.Curriculum {
	ext := filepath.Ext(URL)
	if ext == "" {
		URL += ".yaml"
	}
	if ok, _ := s.metaService.Exists(ctx, URL); !ok {
		log.Printf("curriculum document %s does not exist", URL)
		return &model.Curriculum{}
	}
	var node yaml.Node
	if err := s.metaService.Load(ctx, URL, &node); err != nil {
		log.Printf("failed to load curriculum from %s: %v", URL, err)
		return &model.Curriculum{}
	}
	curriculum, err := s.Parse(&node)
	if err != nil {
		log.Printf("failed to parse curriculum from %s: %v", URL, err)
		return &model.Curriculum{}
	}
	return curriculum
}

// DecodeYAML parses a curriculum document from its encoded form.
func (s *Service) DecodeYAML(encoded []byte) (*model.Curriculum, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(encoded, &node); err != nil {
		return nil, err
	}
	return s.Parse(&node)
}

// Parse converts a YAML document node into the curriculum model.
func (s *Service) Parse(node *yaml.Node) (*model.Curriculum, error) {
	root := (*yml.Node)(node).Root()
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("curriculum document should be a mapping")
	}
	curriculum := &model.Curriculum{}
	err := root.Pairs(func(key string, valueNode *yml.Node) error {
		switch strings.ToLower(key) {
		case "title":
			curriculum.Title = valueNode.Text()
		case "sessions":
			if valueNode.Kind != yaml.SequenceNode {
				return fmt.Errorf("sessions should be a sequence")
			}
			return valueNode.Items(func(index int, sessionNode *yml.Node) error {
				session, err := s.parseSession(sessionNode)
				if err != nil {
					return fmt.Errorf("failed to parse session %d: %w", index, err)
				}
				curriculum.Sessions = append(curriculum.Sessions, session)
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return curriculum, nil
}

func (s *Service) parseSession(node *yml.Node) (*model.Session, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("session node should be a mapping")
	}
	session := &model.Session{}
	err := node.Pairs(func(key string, valueNode *yml.Node) error {
		switch strings.ToLower(key) {
		case "label":
			session.Label = valueNode.Text()
		case "description":
			session.Description = valueNode.Text()
		case "lessons":
			if valueNode.Kind != yaml.SequenceNode {
				return fmt.Errorf("lessons should be a sequence")
			}
			return valueNode.Items(func(index int, lessonNode *yml.Node) error {
				lesson, err := s.parseLesson(lessonNode)
				if err != nil {
					return fmt.Errorf("failed to parse lesson %d: %w", index, err)
				}
				session.Lessons = append(session.Lessons, lesson)
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) parseLesson(node *yml.Node) (*model.Lesson, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("lesson node should be a mapping")
	}
	lesson := &model.Lesson{}
	err := node.Pairs(func(key string, valueNode *yml.Node) error {
		switch strings.ToLower(key) {
		case "label":
			lesson.Label = valueNode.Text()
		case "markdown":
			lesson.Markdown = valueNode.Text()
		case "file":
			lesson.File = valueNode.Text()
		case "actions":
			if valueNode.Kind != yaml.SequenceNode {
				return fmt.Errorf("actions should be a sequence")
			}
			return valueNode.Items(func(index int, actionNode *yml.Node) error {
				action, err := s.parseAction(actionNode)
				if err != nil {
					// a malformed action is skipped, the lesson survives
					log.Printf("skipping action %d of lesson %s: %v", index, lesson.Label, err)
					return nil
				}
				lesson.Actions = append(lesson.Actions, action)
				return nil
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lesson, nil
}

// parseAction accepts either the compact scalar notation Label(kind/target)
// or an expanded mapping with kind, label, target and with.
func (s *Service) parseAction(node *yml.Node) (*model.Action, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return ParseShorthand([]byte(node.Value))
	case yaml.MappingNode:
		var kind, label, target string
		var with map[string]interface{}
		_ = node.Pairs(func(key string, valueNode *yml.Node) error {
			switch strings.ToLower(key) {
			case "kind":
				kind = valueNode.Text()
			case "label":
				label = valueNode.Text()
			case "target":
				target = valueNode.Text()
			case "with":
				if value, ok := valueNode.Interface().(map[string]interface{}); ok {
					with = value
				}
			}
			return nil
		})
		action, err := model.ParseAction(kind, label, target)
		if err != nil {
			return nil, err
		}
		action.With = with
		return action, nil
	default:
		return nil, fmt.Errorf("action node should be a scalar or a mapping")
	}
}
