package repository

// Repositories groups the repositories so they can be handed to the
// service layer as one value.
type Repositories struct {
	TodoLists *TodoListRepository
	TodoItems *TodoItemRepository
}

func NewRepositories() *Repositories {
	return &Repositories{
		TodoLists: NewTodoListRepository(),
		TodoItems: NewTodoItemRepository(),
	}
}
