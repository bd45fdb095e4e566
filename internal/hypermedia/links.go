// Package hypermedia собирает JSON-представления сущностей вместе с блоком
// _links. Сборщик ничего не знает об авторизации: он отображает ту сущность,
// которую ему дали, а решает, можно ли её показывать, обработчик запроса.
package hypermedia

import (
	"net/url"
	"strings"
)

// Link — машиночитаемая ссылка на связанный ресурс
type Link struct {
	Href string `json:"href"`
	Rel  string `json:"rel,omitempty"`
}

// Links — блок _links представления
type Links map[string]Link

// PlainLinks — блок _links из голых адресов без rel. Часть исторического
// контракта фильтрованных выборок.
type PlainLinks map[string]string

// URLBuilder строит абсолютные адреса эндпоинтов от публичного базового URL.
// База конфигурируется, а не берется из запроса: кешированные списочные
// ответы не должны зависеть от Host-заголовка конкретного клиента.
type URLBuilder struct {
	base string
}

// NewURLBuilder создает билдер; хвостовой слеш базового URL срезается
func NewURLBuilder(baseURL string) *URLBuilder {
	return &URLBuilder{base: strings.TrimRight(baseURL, "/")}
}

func (b *URLBuilder) join(segments ...string) string {
	var sb strings.Builder
	sb.WriteString(b.base)
	for _, s := range segments {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(s))
	}
	return sb.String()
}

// Root — точка входа API
func (b *URLBuilder) Root() string { return b.base + "/" }

// Login — эндпоинт аутентификации
func (b *URLBuilder) Login() string { return b.join("login") }

// Categories — коллекция категорий
func (b *URLBuilder) Categories() string { return b.join("category") }

// Category — детальный ресурс категории (адресация по имени)
func (b *URLBuilder) Category(name string) string { return b.join("category", name) }

// CategoryQuizzes — викторины категории
func (b *URLBuilder) CategoryQuizzes(name string) string {
	return b.join("category", name, "quizzes")
}

// CategoryQuestions — все вопросы категории
func (b *URLBuilder) CategoryQuestions(name string) string {
	return b.join("category", name, "questions")
}

// Quizzes — коллекция викторин
func (b *URLBuilder) Quizzes() string { return b.join("quiz") }

// Quiz — детальный ресурс викторины (адресация по внешнему ID)
func (b *URLBuilder) Quiz(uniqueID string) string { return b.join("quiz", uniqueID) }

// QuizQuestions — вопросы викторины
func (b *URLBuilder) QuizQuestions(uniqueID string) string {
	return b.join("quiz", uniqueID, "questions")
}

// Questions — коллекция вопросов
func (b *URLBuilder) Questions() string { return b.join("question") }

// Question — детальный ресурс вопроса
func (b *URLBuilder) Question(uniqueID string) string { return b.join("question", uniqueID) }

// CategoryQuizAll — полный список вопросов викторины в категории
func (b *URLBuilder) CategoryQuizAll(categoryName, quizName string) string {
	return b.join("category", categoryName, "quiz", quizName, "all")
}

// CategoryQuizQuestions — фильтрованный список вопросов викторины в категории
func (b *URLBuilder) CategoryQuizQuestions(categoryName, quizName string) string {
	return b.join("category", categoryName, "quiz", quizName, "questions")
}
