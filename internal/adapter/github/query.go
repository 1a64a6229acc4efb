package github

// listItemsQuery pages through a ProjectV2 board. Each item carries a
// content union (draft, issue or pull request) and a field-value union list;
// every variant exposes a different value key, which is what the normalizer
// dispatches on.
const listItemsQuery = `
query($projectId: ID!, $pageSize: Int!, $cursor: String) {
    node(id: $projectId) {
        ... on ProjectV2 {
            items(first: $pageSize, after: $cursor) {
                pageInfo {
                    hasNextPage
                    endCursor
                }
                nodes {
                    id
                    fieldValues(first: 20) {
                        nodes {
                            ... on ProjectV2ItemFieldTextValue {
                                text
                                field {
                                    ... on ProjectV2FieldCommon { name }
                                }
                            }
                            ... on ProjectV2ItemFieldDateValue {
                                date
                                field {
                                    ... on ProjectV2FieldCommon { name }
                                }
                            }
                            ... on ProjectV2ItemFieldSingleSelectValue {
                                name
                                updatedAt
                                field {
                                    ... on ProjectV2FieldCommon { name }
                                }
                            }
                            ... on ProjectV2ItemFieldNumberValue {
                                number
                                field {
                                    ... on ProjectV2FieldCommon { name }
                                }
                            }
                            ... on ProjectV2ItemFieldIterationValue {
                                iterationId
                                startDate
                                duration
                                title
                                field {
                                    ... on ProjectV2FieldCommon { name }
                                }
                            }
                            ... on ProjectV2ItemFieldUserValue {
                                users(first: 10) {
                                    nodes { login }
                                }
                                field {
                                    ... on ProjectV2FieldCommon { name }
                                }
                            }
                        }
                    }
                    content {
                        ... on DraftIssue {
                            title
                        }
                        ... on Issue {
                            title
                            assignees(first: 10) {
                                nodes { login }
                            }
                        }
                        ... on PullRequest {
                            title
                            assignees(first: 10) {
                                nodes { login }
                            }
                        }
                    }
                }
            }
        }
    }
}`
