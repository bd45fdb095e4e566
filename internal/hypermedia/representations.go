package hypermedia

// Типизированные представления ресурсов. Поля повторяют публичный контракт
// API; внутренние числовые ключи наружу не выходят (кроме category_id,
// который исторически присутствует в детальном ответе категории).

// CategoryItem — элемент списка категорий
type CategoryItem struct {
	Name  string `json:"name"`
	Links Links  `json:"_links"`
}

// CategoryList — ответ GET /category
type CategoryList struct {
	Categories []CategoryItem `json:"categories"`
	Links      Links          `json:"_links"`
}

// CategoryDetail — ответ GET /category/{name}
type CategoryDetail struct {
	CategoryID uint   `json:"category_id"`
	Name       string `json:"name"`
	Links      Links  `json:"_links"`
}

// QuizItem — элемент списков викторин
type QuizItem struct {
	UniqueID    string `json:"unique_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Links       Links  `json:"_links"`
}

// QuizList — ответ GET /quiz
type QuizList struct {
	Quizzes []QuizItem `json:"quizzes"`
	Links   Links      `json:"_links"`
}

// QuizDetail — ответ GET /quiz/{id}; Category — имя родительской категории
// на момент чтения (null, если связь отсутствует)
type QuizDetail struct {
	UniqueID    string  `json:"unique_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    *string `json:"category"`
	Links       Links   `json:"_links"`
}

// OptionRepr — вариант ответа внутри представления вопроса
type OptionRepr struct {
	UniqueID  string `json:"unique_id"`
	Statement string `json:"option_statement"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionRepr — вопрос в детальном ответе и списках
type QuestionRepr struct {
	UniqueID     string       `json:"unique_id"`
	Statement    string       `json:"question_statement"`
	Complexity   string       `json:"complex_level"`
	QuizUniqueID *string      `json:"quiz_unique_id,omitempty"`
	Options      []OptionRepr `json:"options"`
	Links        Links        `json:"_links,omitempty"`
}

// QuestionList — ответ GET /question
type QuestionList struct {
	Questions []QuestionRepr `json:"questions"`
	Links     Links          `json:"_links"`
}

// QuizzesByCategory — ответ GET /category/{name}/quizzes
type QuizzesByCategory struct {
	Category string     `json:"category"`
	Quizzes  []QuizItem `json:"quizzes"`
	Links    Links      `json:"_links"`
}

// QuizRef — краткая ссылка на викторину внутри составных ответов
type QuizRef struct {
	UniqueID string `json:"unique_id"`
	Name     string `json:"name"`
}

// QuestionsByQuiz — ответ GET /quiz/{id}/questions
type QuestionsByQuiz struct {
	Quiz      QuizRef        `json:"quiz"`
	Questions []QuestionRepr `json:"questions"`
	Links     Links          `json:"_links"`
}

// CategoryQuestionRepr — вопрос в списке по категории, с привязкой к викторине
type CategoryQuestionRepr struct {
	UniqueID     string       `json:"unique_id"`
	Statement    string       `json:"question_statement"`
	Complexity   string       `json:"complex_level"`
	QuizName     *string      `json:"quiz_name"`
	QuizUniqueID *string      `json:"quiz_unique_id"`
	Options      []OptionRepr `json:"options"`
	Links        Links        `json:"_links"`
}

// QuestionsInCategory — ответ GET /category/{name}/questions
type QuestionsInCategory struct {
	Category      string                 `json:"category"`
	QuestionCount int                    `json:"question_count"`
	Questions     []CategoryQuestionRepr `json:"questions"`
	Links         Links                  `json:"_links"`
}

// ScopedOptionRepr — вариант ответа в category-scoped списках
// (исторический контракт: ключ statement вместо option_statement)
type ScopedOptionRepr struct {
	UniqueID  string `json:"unique_id"`
	Statement string `json:"statement"`
	IsCorrect bool   `json:"is_correct"`
}

// ScopedQuestionRepr — вопрос в category-scoped списках
type ScopedQuestionRepr struct {
	UniqueID   string             `json:"unique_id"`
	Statement  string             `json:"question_statement"`
	Complexity string             `json:"complex_level"`
	Options    []ScopedOptionRepr `json:"options"`
	Links      PlainLinks         `json:"_links,omitempty"`
}

// CategoryQuizAll — ответ GET /category/{cat}/quiz/{quiz}/all
type CategoryQuizAll struct {
	Category    string               `json:"category"`
	Quiz        string               `json:"quiz"`
	Description string               `json:"description"`
	Questions   []ScopedQuestionRepr `json:"questions"`
}

// FilteredQuestions — ответ GET /category/{cat}/quiz/{quiz}/questions
type FilteredQuestions struct {
	Quiz          string               `json:"quiz"`
	Complexity    string               `json:"complexity"`
	QuestionCount int                  `json:"question_count"`
	Questions     []ScopedQuestionRepr `json:"questions"`
	Links         PlainLinks           `json:"_links"`
}

// EntryPoint — ответ GET /
type EntryPoint struct {
	Links Links `json:"_links"`
}
