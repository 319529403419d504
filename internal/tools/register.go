// Task 2.3: MCP registration — one stable name + description per tool.
package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolCount is the number of tools Register installs.
const ToolCount = 43

// Register installs every Attio tool on the given MCP server. Input schemas
// are inferred from the typed args structs; descriptions are what the remote
// agent sees when it lists tools.
func Register(server *mcp.Server, t *Toolset) {
	// Objects
	mcp.AddTool(server, &mcp.Tool{Name: "list_objects", Description: "Lists all objects in the workspace."}, t.ListObjects)
	mcp.AddTool(server, &mcp.Tool{Name: "create_object", Description: "Creates a new object."}, t.CreateObject)
	mcp.AddTool(server, &mcp.Tool{Name: "get_object", Description: "Retrieves a specific object by its ID or slug."}, t.GetObject)
	mcp.AddTool(server, &mcp.Tool{Name: "update_object", Description: "Updates a specific object."}, t.UpdateObject)

	// Records
	mcp.AddTool(server, &mcp.Tool{Name: "list_records", Description: "Queries records from a specified Attio object, with optional filter and sorts."}, t.ListRecords)
	mcp.AddTool(server, &mcp.Tool{Name: "create_record", Description: "Creates a new record in a specified object."}, t.CreateRecord)
	mcp.AddTool(server, &mcp.Tool{Name: "get_record", Description: "Retrieves a specific record from a specified Attio object."}, t.GetRecord)
	mcp.AddTool(server, &mcp.Tool{Name: "update_record_overwrite", Description: "Updates a specific record, overwriting existing values (uses PUT)."}, t.UpdateRecordOverwrite)
	mcp.AddTool(server, &mcp.Tool{Name: "update_record_append", Description: "Updates a specific record, appending to multiselect values (uses PATCH)."}, t.UpdateRecordAppend)
	mcp.AddTool(server, &mcp.Tool{Name: "delete_record", Description: "Deletes a specific record from a specified Attio object."}, t.DeleteRecord)
	mcp.AddTool(server, &mcp.Tool{Name: "list_record_entries", Description: "Lists all entries, across all lists, for which this record is the parent."}, t.ListRecordEntries)

	// Lists
	mcp.AddTool(server, &mcp.Tool{Name: "list_lists", Description: "Retrieves all lists in the workspace."}, t.ListLists)
	mcp.AddTool(server, &mcp.Tool{Name: "create_list", Description: "Creates a new list."}, t.CreateList)
	mcp.AddTool(server, &mcp.Tool{Name: "get_list", Description: "Retrieves a specific list by its ID or slug."}, t.GetList)
	mcp.AddTool(server, &mcp.Tool{Name: "update_list", Description: "Updates a specific list."}, t.UpdateList)

	// List entries
	mcp.AddTool(server, &mcp.Tool{Name: "create_list_entry", Description: "Creates a new entry in a specified list."}, t.CreateListEntry)
	mcp.AddTool(server, &mcp.Tool{Name: "get_list_entry", Description: "Retrieves a specific entry from a specified list."}, t.GetListEntry)
	mcp.AddTool(server, &mcp.Tool{Name: "list_entries", Description: "Queries entries from a specified list, with optional filter and sorts."}, t.ListEntries)
	mcp.AddTool(server, &mcp.Tool{Name: "update_list_entry_overwrite", Description: "Updates a specific list entry, overwriting existing values (uses PUT)."}, t.UpdateListEntryOverwrite)
	mcp.AddTool(server, &mcp.Tool{Name: "update_list_entry_append", Description: "Updates a specific list entry, appending to multiselect values (uses PATCH)."}, t.UpdateListEntryAppend)
	mcp.AddTool(server, &mcp.Tool{Name: "delete_list_entry", Description: "Deletes a specific entry from a specified list."}, t.DeleteListEntry)
	mcp.AddTool(server, &mcp.Tool{Name: "get_list_entry_attribute_values", Description: "Retrieves the values of one attribute on a specific list entry."}, t.GetListEntryAttributeValues)

	// Attributes, select options and statuses
	mcp.AddTool(server, &mcp.Tool{Name: "list_attributes", Description: "Lists all attributes for a given target (object or list)."}, t.ListAttributes)
	mcp.AddTool(server, &mcp.Tool{Name: "create_attribute", Description: "Creates a new attribute on a given target (object or list)."}, t.CreateAttribute)
	mcp.AddTool(server, &mcp.Tool{Name: "get_attribute", Description: "Retrieves a specific attribute of a given target (object or list)."}, t.GetAttribute)
	mcp.AddTool(server, &mcp.Tool{Name: "update_attribute", Description: "Updates a specific attribute of a given target (object or list)."}, t.UpdateAttribute)
	mcp.AddTool(server, &mcp.Tool{Name: "list_select_options", Description: "Lists the options of a select attribute."}, t.ListSelectOptions)
	mcp.AddTool(server, &mcp.Tool{Name: "create_select_option", Description: "Adds an option to a select attribute."}, t.CreateSelectOption)
	mcp.AddTool(server, &mcp.Tool{Name: "update_select_option", Description: "Updates an option of a select attribute."}, t.UpdateSelectOption)
	mcp.AddTool(server, &mcp.Tool{Name: "list_statuses", Description: "Lists the statuses of a status attribute."}, t.ListStatuses)
	mcp.AddTool(server, &mcp.Tool{Name: "create_status", Description: "Adds a status to a status attribute."}, t.CreateStatus)
	mcp.AddTool(server, &mcp.Tool{Name: "update_status", Description: "Updates a status of a status attribute."}, t.UpdateStatus)

	// Notes
	mcp.AddTool(server, &mcp.Tool{Name: "list_notes", Description: "Lists all notes in the workspace."}, t.ListNotes)
	mcp.AddTool(server, &mcp.Tool{Name: "create_note", Description: "Creates a new note."}, t.CreateNote)
	mcp.AddTool(server, &mcp.Tool{Name: "get_note", Description: "Retrieves a specific note by its ID."}, t.GetNote)
	mcp.AddTool(server, &mcp.Tool{Name: "delete_note", Description: "Deletes a specific note by its ID."}, t.DeleteNote)

	// Tasks
	mcp.AddTool(server, &mcp.Tool{Name: "list_tasks", Description: "Lists all tasks in the workspace."}, t.ListTasks)
	mcp.AddTool(server, &mcp.Tool{Name: "create_task", Description: "Creates a new task."}, t.CreateTask)
	mcp.AddTool(server, &mcp.Tool{Name: "get_task", Description: "Retrieves a specific task by its ID."}, t.GetTask)
	mcp.AddTool(server, &mcp.Tool{Name: "update_task", Description: "Updates a specific task."}, t.UpdateTask)
	mcp.AddTool(server, &mcp.Tool{Name: "delete_task", Description: "Deletes a specific task by its ID."}, t.DeleteTask)

	// Workspace members
	mcp.AddTool(server, &mcp.Tool{Name: "list_workspace_members", Description: "Lists all workspace members."}, t.ListWorkspaceMembers)
	mcp.AddTool(server, &mcp.Tool{Name: "get_workspace_member", Description: "Retrieves a specific workspace member by their ID."}, t.GetWorkspaceMember)
}
