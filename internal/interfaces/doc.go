// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help contributors find
// extension points and see how to implement new functionality.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - WordStore: Bulk insert of lesson words (internal/services/interfaces.go)
//   - Pinger: Database liveness for /health (internal/http/health.go)
//
// ## Delivery Interfaces
//
//   - Sender: Outgoing email (internal/email/email.go). SMTPSender talks to a
//     relay, LogSender only logs, RecordingSender keeps messages for tests and
//     QueuedSender hands messages to the task queue.
//
// ## Background Task Interfaces
//
//   - TaskAdder: Anything that can enqueue backlite tasks (internal/tasks/send_email.go)
//   - AuditEventCleaner: Deletes old audit events (internal/tasks/cleanup_audit.go)
//   - ResetTokenCleaner: Deletes spent reset tokens (internal/tasks/cleanup_reset_tokens.go)
//
// # Adding a New Content Resource
//
// Most content types are plain CRUD over one table. To add one:
//
//  1. Add the model to internal/entities/ and list it in entities.All()
//
//  2. Add request and response types with mappers in internal/dto/
//
//     type CreateIdiomRequest struct {
//         LessonID uint   `json:"lessonId" validate:"required"`
//         Text     string `json:"text" validate:"required,max=500"`
//     }
//
//  3. Build a crud.Repository and a services.CRUD, declaring parent links so
//     child creates are checked against the parent table:
//
//     Idioms: NewCRUD(CRUDConfig[entities.Idiom, dto.CreateIdiomRequest, dto.UpdateIdiomRequest, dto.IdiomResponse]{
//         Repo:    crud.NewRepository[entities.Idiom](db, "Idiom"),
//         Parents: []ParentLink[...]{{Parent: ParentOf(lessonRepo), FromCreate: ..., FromUpdate: ...}},
//     })
//
//  4. Mount it in internal/http/content.go:
//
//     NewResourceController(svc.Lessons.Idioms, auditService).Register(api, "/idioms", write)
//
// # Adding a New Background Task
//
//  1. Define the task type with a Config() naming its queue
//
//  2. Write a backlite.QueueProcessor and a NewXxxQueue constructor in internal/tasks/
//
//  3. Register the queue in entrypoint.Build and enqueue with client.Add(task).Save()
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
