package hypermedia

import (
	"errors"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// RelationSource отдает текущие персистентные связи на момент сборки ответа.
// Ссылки на родителей и соседей всегда вычисляются отсюда, а не кешируются
// в сущности — представление консистентно с базой на момент чтения.
type RelationSource interface {
	CategoryOfQuiz(quizID uint) (*entity.Category, error)
	QuizOfQuestion(questionID uint) (*entity.Quiz, error)
}

// Assembler строит представления ресурсов с блоком _links
type Assembler struct {
	urls *URLBuilder
	rels RelationSource
}

// NewAssembler создает сборщик представлений
func NewAssembler(urls *URLBuilder, rels RelationSource) *Assembler {
	return &Assembler{urls: urls, rels: rels}
}

// URLs возвращает билдер адресов (нужен обработчикам для Location и экспорта)
func (a *Assembler) URLs() *URLBuilder {
	return a.urls
}

// categoryOfQuiz возвращает родительскую категорию или nil, если связи нет
func (a *Assembler) categoryOfQuiz(quizID uint) (*entity.Category, error) {
	category, err := a.rels.CategoryOfQuiz(quizID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return category, nil
}

// quizOfQuestion возвращает родительскую викторину или nil, если связи нет
func (a *Assembler) quizOfQuestion(questionID uint) (*entity.Quiz, error) {
	quiz, err := a.rels.QuizOfQuestion(questionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return quiz, nil
}

// addGlobalLinks добавляет ссылки глобальной связности: home и коллекции
// верхнего уровня, кроме коллекции собственного вида ресурса
func (a *Assembler) addGlobalLinks(kind string, links Links) {
	links["home"] = Link{Href: a.urls.Categories(), Rel: "home"}
	if kind != "category" {
		links["categories"] = Link{Href: a.urls.Categories(), Rel: "categories-collection"}
	}
	if kind != "quiz" {
		links["quizzes"] = Link{Href: a.urls.Quizzes(), Rel: "quizzes-collection"}
	}
	if kind != "question" {
		links["questions"] = Link{Href: a.urls.Questions(), Rel: "questions-collection"}
	}
}

// EntryPoint — представление точки входа API
func (a *Assembler) EntryPoint() EntryPoint {
	return EntryPoint{Links: Links{
		"self":     Link{Href: a.urls.Root()},
		"login":    Link{Href: a.urls.Login()},
		"category": Link{Href: a.urls.Categories()},
		"quiz":     Link{Href: a.urls.Quizzes()},
		"question": Link{Href: a.urls.Questions()},
	}}
}

// LoginLinks — блок _links успешного логина
func (a *Assembler) LoginLinks() Links {
	links := Links{
		"self": Link{Href: a.urls.Login(), Rel: "login-collection"},
	}
	a.addGlobalLinks("login", links)
	return links
}

// CategoryList собирает ответ списка категорий
func (a *Assembler) CategoryList(categories []entity.Category) CategoryList {
	items := make([]CategoryItem, 0, len(categories))
	for _, cat := range categories {
		items = append(items, CategoryItem{
			Name: cat.Name,
			Links: Links{
				"self":    Link{Href: a.urls.Category(cat.Name), Rel: "category-instance"},
				"quizzes": Link{Href: a.urls.CategoryQuizzes(cat.Name), Rel: "category-quizzes"},
			},
		})
	}
	return CategoryList{
		Categories: items,
		Links: Links{
			"self":      Link{Href: a.urls.Categories(), Rel: "category-collection"},
			"quizzes":   Link{Href: a.urls.Quizzes(), Rel: "quizzes-collection"},
			"questions": Link{Href: a.urls.Questions(), Rel: "questions-collection"},
		},
	}
}

// CategoryDetail собирает детальное представление категории
func (a *Assembler) CategoryDetail(category *entity.Category) CategoryDetail {
	return CategoryDetail{
		CategoryID: category.ID,
		Name:       category.Name,
		Links: Links{
			"self":       Link{Href: a.urls.Category(category.Name), Rel: "category-instance"},
			"collection": Link{Href: a.urls.Categories(), Rel: "category-collection"},
			"quizzes":    Link{Href: a.urls.CategoryQuizzes(category.Name), Rel: "category-quizzes"},
			"questions":  Link{Href: a.urls.CategoryQuestions(category.Name), Rel: "category-questions"},
		},
	}
}

// CategoryResourceLinks — блок _links подтверждения мутации категории
func (a *Assembler) CategoryResourceLinks(name string) Links {
	links := Links{
		"self":       Link{Href: a.urls.Category(name), Rel: "category-instance"},
		"collection": Link{Href: a.urls.Categories(), Rel: "category-collection"},
	}
	a.addGlobalLinks("category", links)
	return links
}

// CategoryCollectionLinks — блок _links подтверждения без конкретного ресурса
// (например, после удаления категории)
func (a *Assembler) CategoryCollectionLinks() Links {
	links := Links{
		"self": Link{Href: a.urls.Categories(), Rel: "category-collection"},
	}
	a.addGlobalLinks("category", links)
	return links
}

// quizItem собирает элемент списков викторин
func (a *Assembler) quizItem(quiz *entity.Quiz) QuizItem {
	return QuizItem{
		UniqueID:    quiz.UniqueID,
		Name:        quiz.Name,
		Description: quiz.Description,
		Links: Links{
			"self":      Link{Href: a.urls.Quiz(quiz.UniqueID), Rel: "quiz-instance"},
			"questions": Link{Href: a.urls.QuizQuestions(quiz.UniqueID), Rel: "quiz-questions"},
		},
	}
}

// QuizList собирает ответ списка викторин
func (a *Assembler) QuizList(quizzes []entity.Quiz) QuizList {
	items := make([]QuizItem, 0, len(quizzes))
	for i := range quizzes {
		items = append(items, a.quizItem(&quizzes[i]))
	}
	return QuizList{
		Quizzes: items,
		Links: Links{
			"self": Link{Href: a.urls.Quizzes(), Rel: "quiz-collection"},
		},
	}
}

// QuizDetail собирает детальное представление викторины; имя категории и
// родительские ссылки берутся из текущего состояния связей
func (a *Assembler) QuizDetail(quiz *entity.Quiz) (QuizDetail, error) {
	category, err := a.categoryOfQuiz(quiz.ID)
	if err != nil {
		return QuizDetail{}, err
	}

	detail := QuizDetail{
		UniqueID:    quiz.UniqueID,
		Name:        quiz.Name,
		Description: quiz.Description,
		Links: Links{
			"self":       Link{Href: a.urls.Quiz(quiz.UniqueID), Rel: "quiz-instance"},
			"questions":  Link{Href: a.urls.QuizQuestions(quiz.UniqueID), Rel: "quiz-questions"},
			"collection": Link{Href: a.urls.Quizzes(), Rel: "quiz-collection"},
		},
	}
	if category != nil {
		detail.Category = &category.Name
		detail.Links["category"] = Link{Href: a.urls.Category(category.Name), Rel: "parent-category"}
		detail.Links["category_quizzes"] = Link{Href: a.urls.CategoryQuizzes(category.Name), Rel: "sibling-quizzes"}
	}
	return detail, nil
}

// QuizResourceLinks — блок _links подтверждения мутации викторины
func (a *Assembler) QuizResourceLinks(quiz *entity.Quiz) (Links, error) {
	category, err := a.categoryOfQuiz(quiz.ID)
	if err != nil {
		return nil, err
	}
	links := Links{
		"self":       Link{Href: a.urls.Quiz(quiz.UniqueID), Rel: "quiz-instance"},
		"collection": Link{Href: a.urls.Quizzes(), Rel: "quiz-collection"},
	}
	if category != nil {
		links["category"] = Link{Href: a.urls.Category(category.Name), Rel: "parent-category"}
		links["category_quizzes"] = Link{Href: a.urls.CategoryQuizzes(category.Name), Rel: "sibling-quizzes"}
	}
	a.addGlobalLinks("quiz", links)
	return links, nil
}

// QuizCollectionLinks — блок _links подтверждения удаления викторины
func (a *Assembler) QuizCollectionLinks() Links {
	links := Links{
		"self": Link{Href: a.urls.Quizzes(), Rel: "quiz-collection"},
	}
	a.addGlobalLinks("quiz", links)
	return links
}

// optionReprs конвертирует варианты ответа
func optionReprs(options []entity.Option) []OptionRepr {
	reprs := make([]OptionRepr, 0, len(options))
	for _, opt := range options {
		reprs = append(reprs, OptionRepr{
			UniqueID:  opt.UniqueID,
			Statement: opt.Statement,
			IsCorrect: opt.IsCorrect,
		})
	}
	return reprs
}

// scopedOptionReprs конвертирует варианты для category-scoped ответов
func scopedOptionReprs(options []entity.Option) []ScopedOptionRepr {
	reprs := make([]ScopedOptionRepr, 0, len(options))
	for _, opt := range options {
		reprs = append(reprs, ScopedOptionRepr{
			UniqueID:  opt.UniqueID,
			Statement: opt.Statement,
			IsCorrect: opt.IsCorrect,
		})
	}
	return reprs
}

// QuestionDetail собирает детальное представление вопроса
func (a *Assembler) QuestionDetail(question *entity.Question) (QuestionRepr, error) {
	quiz, err := a.quizOfQuestion(question.ID)
	if err != nil {
		return QuestionRepr{}, err
	}

	repr := QuestionRepr{
		UniqueID:   question.UniqueID,
		Statement:  question.Statement,
		Complexity: question.Complexity,
		Options:    optionReprs(question.Options),
		Links: Links{
			"self":       Link{Href: a.urls.Question(question.UniqueID), Rel: "question-instance"},
			"collection": Link{Href: a.urls.Questions(), Rel: "question-collection"},
		},
	}
	if quiz != nil {
		repr.QuizUniqueID = &quiz.UniqueID
		repr.Links["quiz"] = Link{Href: a.urls.Quiz(quiz.UniqueID), Rel: "parent-quiz"}
	}
	a.addGlobalLinks("question", repr.Links)
	return repr, nil
}

// QuestionResourceLinks — блок _links подтверждения мутации вопроса
func (a *Assembler) QuestionResourceLinks(question *entity.Question) (Links, error) {
	quiz, err := a.quizOfQuestion(question.ID)
	if err != nil {
		return nil, err
	}
	links := Links{
		"self":       Link{Href: a.urls.Question(question.UniqueID), Rel: "question-instance"},
		"collection": Link{Href: a.urls.Questions(), Rel: "question-collection"},
	}
	if quiz != nil {
		links["quiz"] = Link{Href: a.urls.Quiz(quiz.UniqueID), Rel: "parent-quiz"}
	}
	a.addGlobalLinks("question", links)
	return links, nil
}

// QuestionCollectionLinks — блок _links подтверждения удаления вопроса
func (a *Assembler) QuestionCollectionLinks() Links {
	links := Links{
		"self": Link{Href: a.urls.Questions(), Rel: "question-collection"},
	}
	a.addGlobalLinks("question", links)
	return links
}

// QuestionList собирает ответ полного списка вопросов
func (a *Assembler) QuestionList(questions []entity.Question) (QuestionList, error) {
	items := make([]QuestionRepr, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		quiz, err := a.quizOfQuestion(q.ID)
		if err != nil {
			return QuestionList{}, err
		}

		item := QuestionRepr{
			UniqueID:   q.UniqueID,
			Statement:  q.Statement,
			Complexity: q.Complexity,
			Options:    optionReprs(q.Options),
			Links: Links{
				"self": Link{Href: a.urls.Question(q.UniqueID), Rel: "question-instance"},
			},
		}
		if quiz != nil {
			item.QuizUniqueID = &quiz.UniqueID
			item.Links["quiz"] = Link{Href: a.urls.Quiz(quiz.UniqueID), Rel: "parent-quiz"}
			item.Links["quiz_questions"] = Link{Href: a.urls.QuizQuestions(quiz.UniqueID), Rel: "sibling-questions"}
		}
		items = append(items, item)
	}
	return QuestionList{
		Questions: items,
		Links: Links{
			"self":       Link{Href: a.urls.Questions(), Rel: "questions-collection"},
			"quizzes":    Link{Href: a.urls.Quizzes(), Rel: "quizzes-collection"},
			"categories": Link{Href: a.urls.Categories(), Rel: "categories-collection"},
		},
	}, nil
}

// QuizzesByCategory собирает ответ списка викторин категории
func (a *Assembler) QuizzesByCategory(category *entity.Category, quizzes []entity.Quiz) QuizzesByCategory {
	items := make([]QuizItem, 0, len(quizzes))
	for i := range quizzes {
		items = append(items, a.quizItem(&quizzes[i]))
	}
	return QuizzesByCategory{
		Category: category.Name,
		Quizzes:  items,
		Links: Links{
			"self":      Link{Href: a.urls.CategoryQuizzes(category.Name), Rel: "category-quizzes"},
			"category":  Link{Href: a.urls.Category(category.Name), Rel: "parent-category"},
			"questions": Link{Href: a.urls.CategoryQuestions(category.Name), Rel: "category-questions"},
		},
	}
}

// QuestionsByQuiz собирает ответ списка вопросов викторины
func (a *Assembler) QuestionsByQuiz(quiz *entity.Quiz, questions []entity.Question) (QuestionsByQuiz, error) {
	items := make([]QuestionRepr, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		items = append(items, QuestionRepr{
			UniqueID:   q.UniqueID,
			Statement:  q.Statement,
			Complexity: q.Complexity,
			Options:    optionReprs(q.Options),
			Links: Links{
				"self": Link{Href: a.urls.Question(q.UniqueID), Rel: "question-instance"},
				"quiz": Link{Href: a.urls.Quiz(quiz.UniqueID), Rel: "parent-quiz"},
			},
		})
	}

	links := Links{
		"self": Link{Href: a.urls.QuizQuestions(quiz.UniqueID), Rel: "quiz-questions"},
		"quiz": Link{Href: a.urls.Quiz(quiz.UniqueID), Rel: "parent-quiz"},
	}
	a.addGlobalLinks("question", links)
	category, err := a.categoryOfQuiz(quiz.ID)
	if err != nil {
		return QuestionsByQuiz{}, err
	}
	if category != nil {
		links["category"] = Link{Href: a.urls.Category(category.Name), Rel: "parent-category"}
	}

	return QuestionsByQuiz{
		Quiz:      QuizRef{UniqueID: quiz.UniqueID, Name: quiz.Name},
		Questions: items,
		Links:     links,
	}, nil
}

// QuestionsInCategory собирает ответ списка вопросов всех викторин категории
func (a *Assembler) QuestionsInCategory(category *entity.Category, questions []entity.Question) (QuestionsInCategory, error) {
	items := make([]CategoryQuestionRepr, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		quiz, err := a.quizOfQuestion(q.ID)
		if err != nil {
			return QuestionsInCategory{}, err
		}

		item := CategoryQuestionRepr{
			UniqueID:   q.UniqueID,
			Statement:  q.Statement,
			Complexity: q.Complexity,
			Options:    optionReprs(q.Options),
			Links: Links{
				"self": Link{Href: a.urls.Question(q.UniqueID), Rel: "question-instance"},
			},
		}
		if quiz != nil {
			item.QuizName = &quiz.Name
			item.QuizUniqueID = &quiz.UniqueID
			item.Links["quiz"] = Link{Href: a.urls.Quiz(quiz.UniqueID), Rel: "parent-quiz"}
		}
		items = append(items, item)
	}

	return QuestionsInCategory{
		Category:      category.Name,
		QuestionCount: len(items),
		Questions:     items,
		Links: Links{
			"self":     Link{Href: a.urls.CategoryQuestions(category.Name), Rel: "category-questions"},
			"category": Link{Href: a.urls.Category(category.Name), Rel: "parent-category"},
			"quizzes":  Link{Href: a.urls.CategoryQuizzes(category.Name), Rel: "category-quizzes"},
		},
	}, nil
}

// CategoryQuizAll собирает полный список вопросов викторины в категории
func (a *Assembler) CategoryQuizAll(category *entity.Category, quiz *entity.Quiz, questions []entity.Question) CategoryQuizAll {
	items := make([]ScopedQuestionRepr, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		items = append(items, ScopedQuestionRepr{
			UniqueID:   q.UniqueID,
			Statement:  q.Statement,
			Complexity: q.Complexity,
			Options:    scopedOptionReprs(q.Options),
		})
	}
	return CategoryQuizAll{
		Category:    category.Name,
		Quiz:        quiz.Name,
		Description: quiz.Description,
		Questions:   items,
	}
}

// FilteredQuestions собирает фильтрованный список вопросов викторины.
// Ссылки этого ответа — голые адреса без rel (исторический контракт).
func (a *Assembler) FilteredQuestions(category *entity.Category, quiz *entity.Quiz, complexity string, questions []entity.Question) FilteredQuestions {
	items := make([]ScopedQuestionRepr, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		items = append(items, ScopedQuestionRepr{
			UniqueID:   q.UniqueID,
			Statement:  q.Statement,
			Complexity: q.Complexity,
			Options:    scopedOptionReprs(q.Options),
			Links: PlainLinks{
				"self": a.urls.Question(q.UniqueID),
			},
		})
	}
	return FilteredQuestions{
		Quiz:          quiz.Name,
		Complexity:    complexity,
		QuestionCount: len(items),
		Questions:     items,
		Links: PlainLinks{
			"self":          a.urls.CategoryQuizQuestions(category.Name, quiz.Name),
			"all_questions": a.urls.CategoryQuizAll(category.Name, quiz.Name),
			"category":      a.urls.Category(category.Name),
			"quiz":          a.urls.Quiz(quiz.UniqueID),
		},
	}
}

// ScopedCreateLinks — блок _links подтверждения создания вопроса в викторине
// категории. Тоже голые адреса без rel.
func (a *Assembler) ScopedCreateLinks(categoryName, quizName string) PlainLinks {
	return PlainLinks{
		"self":     a.urls.CategoryQuizQuestions(categoryName, quizName),
		"category": a.urls.Categories(),
		"quiz":     a.urls.Quizzes(),
	}
}
